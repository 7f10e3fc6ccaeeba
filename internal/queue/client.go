package queue

import (
	"fmt"
	"strings"

	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault
)

// Client 队列客户端封装
type Client struct {
	client       *asynq.Client
	enabled      bool
	defaultQueue string
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{enabled: false, defaultQueue: DefaultQueue}, nil
	}
	opt := buildRedisOpt(cfg)
	client := asynq.NewClient(opt)
	return &Client{
		client:       client,
		enabled:      true,
		defaultQueue: DefaultQueue,
	}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueOrderConfirmation 推送下单成功通知任务
func (c *Client) EnqueueOrderConfirmation(payload OrderConfirmationPayload, opts ...asynq.Option) error {
	task, err := NewOrderConfirmationTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, opts...)
}

// EnqueueOrderStatusChanged 推送订单状态变更通知任务
func (c *Client) EnqueueOrderStatusChanged(payload OrderStatusChangedPayload, opts ...asynq.Option) error {
	task, err := NewOrderStatusChangedTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, opts...)
}

// enqueue 将任务投递到默认队列，队列未启用时静默丢弃
func (c *Client) enqueue(task *asynq.Task, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	options := append([]asynq.Option{asynq.Queue(c.defaultQueue)}, opts...)
	_, err := c.client.Enqueue(task, options...)
	return err
}

// BuildServerConfig 生成队列服务端配置，并发与队列权重缺省时取内置默认
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	serverCfg := asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{DefaultQueue: 1},
	}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			serverCfg.Concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			serverCfg.Queues = cfg.Queues
		}
	}
	return buildRedisOpt(cfg), serverCfg
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	opt := asynq.RedisClientOpt{Addr: "127.0.0.1:6379"}
	if cfg == nil {
		return opt
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	opt.Addr = fmt.Sprintf("%s:%d", host, port)
	opt.Password = cfg.Password
	opt.DB = cfg.DB
	return opt
}
