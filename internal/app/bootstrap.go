package app

import (
	"errors"
	"fmt"

	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/provider"
	"github.com/shopora-next/internal/router"
	"github.com/shopora-next/internal/worker"
)

// BuildRunner 按启动模式组装 API 与 Worker 服务
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	runAPI := mode == ModeAll || mode == ModeAPI
	runWorker := mode == ModeAll || mode == ModeWorker
	if !runAPI && !runWorker {
		return nil, fmt.Errorf("unknown run mode: %s", mode)
	}

	container := provider.NewContainer(cfg)

	var services []Service
	if runAPI {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(listenAddr(cfg), engine))
	}
	if runWorker {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = opts.withDefaults()
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", listenAddr(opts.Config), "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}

func listenAddr(cfg *config.Config) string {
	return cfg.Server.Host + ":" + cfg.Server.Port
}
