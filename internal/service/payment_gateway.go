package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopora-next/internal/models"

	"github.com/google/uuid"
)

// PaymentResult 支付结果
type PaymentResult struct {
	ReferenceID string `json:"reference_id"`
}

// PaymentGateway 支付网关接口
type PaymentGateway interface {
	Charge(ctx context.Context, method string, amount models.Money) (*PaymentResult, error)
}

// SimulatedGatewayOptions 模拟网关配置
type SimulatedGatewayOptions struct {
	SuccessRate float64
	MinDelayMS  int
	MaxDelayMS  int
	Seed        int64
}

// SimulatedPaymentGateway 模拟支付网关。
// 按配置的成功率随机放行，并模拟真实网关的处理延迟。
type SimulatedPaymentGateway struct {
	successRate float64
	minDelay    time.Duration
	maxDelay    time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedPaymentGateway 创建模拟支付网关
func NewSimulatedPaymentGateway(opts SimulatedGatewayOptions) *SimulatedPaymentGateway {
	successRate := opts.SuccessRate
	if successRate <= 0 || successRate > 1 {
		successRate = 0.95
	}
	minDelay := time.Duration(opts.MinDelayMS) * time.Millisecond
	maxDelay := time.Duration(opts.MaxDelayMS) * time.Millisecond
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SimulatedPaymentGateway{
		successRate: successRate,
		minDelay:    minDelay,
		maxDelay:    maxDelay,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Charge 发起模拟扣款，失败返回 ErrPaymentDeclined
func (g *SimulatedPaymentGateway) Charge(ctx context.Context, method string, amount models.Money) (*PaymentResult, error) {
	delay, roll := g.nextAttempt()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if roll >= g.successRate {
		return nil, ErrPaymentDeclined
	}
	return &PaymentResult{ReferenceID: BuildPaymentReference(method)}, nil
}

// nextAttempt 取本次扣款的延迟与随机值，rng 非并发安全需加锁
func (g *SimulatedPaymentGateway) nextAttempt() (time.Duration, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delay := g.minDelay
	if spread := g.maxDelay - g.minDelay; spread > 0 {
		delay += time.Duration(g.rng.Int63n(int64(spread)))
	}
	return delay, g.rng.Float64()
}

// BuildPaymentReference 生成支付参考号，形如 UPI_1712345678901_a1b2c3
func BuildPaymentReference(method string) string {
	normalized := strings.ToUpper(strings.TrimSpace(method))
	if normalized == "" {
		normalized = "PAY"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s_%d_%s", normalized, time.Now().UnixMilli(), suffix)
}
