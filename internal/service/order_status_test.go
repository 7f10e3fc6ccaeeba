package service

import (
	"testing"

	"github.com/shopora-next/internal/constants"
)

func TestStatusProgressPending(t *testing.T) {
	progress := StatusProgress(constants.OrderStatusPending)
	if progress.Cancelled {
		t.Fatalf("pending order should not be cancelled")
	}
	if progress.Percent != 25 {
		t.Fatalf("pending percent expected 25, got %d", progress.Percent)
	}
	if len(progress.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(progress.Steps))
	}
	if !progress.Steps[0].Completed {
		t.Fatalf("first step should be completed")
	}
	if progress.Steps[1].Completed {
		t.Fatalf("second step should not be completed yet")
	}
}

func TestStatusProgressProcessing(t *testing.T) {
	// processing 尚未发货，进度停留在第一个节点
	progress := StatusProgress(constants.OrderStatusProcessing)
	if progress.Percent != 25 {
		t.Fatalf("processing percent expected 25, got %d", progress.Percent)
	}
	if !progress.Steps[0].Completed || progress.Steps[1].Completed {
		t.Fatalf("processing should only complete the first step: %+v", progress.Steps)
	}
}

func TestStatusProgressDeliveryChain(t *testing.T) {
	cases := []struct {
		status  string
		percent int
	}{
		{constants.OrderStatusShipped, 50},
		{constants.OrderStatusOutForDelivery, 75},
		{constants.OrderStatusDelivered, 100},
	}
	for _, tc := range cases {
		progress := StatusProgress(tc.status)
		if progress.Percent != tc.percent {
			t.Fatalf("%s percent expected %d, got %d", tc.status, tc.percent, progress.Percent)
		}
	}

	delivered := StatusProgress(constants.OrderStatusDelivered)
	for idx, step := range delivered.Steps {
		if !step.Completed {
			t.Fatalf("delivered order should complete every step, step %d is not", idx)
		}
	}
}

func TestStatusProgressCancelled(t *testing.T) {
	progress := StatusProgress(constants.OrderStatusCancelled)
	if !progress.Cancelled {
		t.Fatalf("cancelled order should be flagged as cancelled")
	}
	if progress.Percent != 0 {
		t.Fatalf("cancelled order keeps no delivery progress, got %d", progress.Percent)
	}
	if len(progress.Steps) != 0 {
		t.Fatalf("cancelled order should not render delivery steps, got %d", len(progress.Steps))
	}
}

func TestStatusProgressUnknown(t *testing.T) {
	progress := StatusProgress("mystery")
	if progress.Percent != 0 {
		t.Fatalf("unknown status percent expected 0, got %d", progress.Percent)
	}
	for idx, step := range progress.Steps {
		if step.Completed {
			t.Fatalf("unknown status should complete no steps, step %d is completed", idx)
		}
	}
}
