package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Service 可被 Runner 编排的长生命周期服务
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 并发启动一组服务，任一服务退出即触发整体停机
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// RunWithOptions 绑定系统信号后运行服务
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = opts.withDefaults()

	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 启动全部服务并阻塞，直到收到信号或任一服务退出
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if log == nil {
		log = zap.S()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exitCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		service := svc
		go func() {
			log.Infow("service_start", "service", service.Name())
			exitCh <- service.Start(ctx)
			log.Infow("service_exit", "service", service.Name())
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-exitCh:
		runErr = err
	}
	cancel()

	r.stopAll(stopTimeout, log)

	// 信号触发的退出属于正常停机
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

// stopAll 逐个停止服务，单个失败不阻断其余服务的停止
func (r *Runner) stopAll(stopTimeout time.Duration, log *zap.SugaredLogger) {
	if stopTimeout <= 0 {
		stopTimeout = defaultShutdownTimeout
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()

	for _, svc := range r.services {
		if svc == nil {
			continue
		}
		if err := svc.Stop(stopCtx); err != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
}
