package worker

import (
	"context"
	"errors"

	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 把 asynq 服务器适配到应用的服务生命周期
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 创建通知队列消费服务，队列未启用时返回错误
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}

	opt, serverCfg := queue.BuildServerConfig(cfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	return &Service{
		server: asynq.NewServer(opt, serverCfg),
		mux:    mux,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	return "worker"
}

// Start 阻塞运行消费循环，由 Stop 触发退出
func (s *Service) Start(_ context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	return s.server.Run(s.mux)
}

// Stop 优雅停止，等待在途任务完成
func (s *Service) Stop(_ context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}
