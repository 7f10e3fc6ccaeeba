package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopora-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestSimulatedGatewayAlwaysApproves(t *testing.T) {
	gateway := NewSimulatedPaymentGateway(SimulatedGatewayOptions{
		SuccessRate: 1,
		Seed:        42,
	})

	amount := models.NewMoneyFromDecimal(decimal.NewFromFloat(100.00))
	for i := 0; i < 20; i++ {
		result, err := gateway.Charge(context.Background(), "upi", amount)
		if err != nil {
			t.Fatalf("charge %d failed: %v", i, err)
		}
		if !strings.HasPrefix(result.ReferenceID, "UPI_") {
			t.Fatalf("reference should carry the method prefix, got %s", result.ReferenceID)
		}
	}
}

func TestSimulatedGatewayDeclines(t *testing.T) {
	gateway := NewSimulatedPaymentGateway(SimulatedGatewayOptions{
		SuccessRate: 0.0000001,
		Seed:        7,
	})

	amount := models.NewMoneyFromDecimal(decimal.NewFromFloat(50.00))
	_, err := gateway.Charge(context.Background(), "card", amount)
	if !errors.Is(err, ErrPaymentDeclined) {
		t.Fatalf("expected ErrPaymentDeclined, got: %v", err)
	}
}

func TestSimulatedGatewayContextCancelled(t *testing.T) {
	gateway := NewSimulatedPaymentGateway(SimulatedGatewayOptions{
		SuccessRate: 1,
		MinDelayMS:  50,
		MaxDelayMS:  50,
		Seed:        1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	amount := models.NewMoneyFromDecimal(decimal.NewFromFloat(10.00))
	_, err := gateway.Charge(ctx, "card", amount)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestBuildPaymentReference(t *testing.T) {
	ref := BuildPaymentReference("upi")
	if !strings.HasPrefix(ref, "UPI_") {
		t.Fatalf("expected UPI_ prefix, got %s", ref)
	}
	parts := strings.Split(ref, "_")
	if len(parts) != 3 {
		t.Fatalf("reference should have three segments, got %s", ref)
	}
	if len(parts[2]) != 6 {
		t.Fatalf("reference suffix should be 6 chars, got %s", parts[2])
	}

	if ref := BuildPaymentReference("  "); !strings.HasPrefix(ref, "PAY_") {
		t.Fatalf("blank method should fall back to PAY_, got %s", ref)
	}
}
