package app

import (
	"os"
	"time"

	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/logger"

	"go.uber.org/zap"
)

// 启动模式：all 同进程跑 API 与 Worker，api/worker 各自单独跑
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

const defaultShutdownTimeout = 10 * time.Second

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// withDefaults 补齐未设置的启动选项
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logger.S()
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = defaultShutdownTimeout
	}
	if o.Mode == "" {
		o.Mode = ModeAll
	}
	return o
}
