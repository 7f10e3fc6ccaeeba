package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopora-next/internal/constants"
	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, status string) models.Order {
	t.Helper()
	order := models.Order{
		OrderNo:       fmt.Sprintf("SP%d%d", time.Now().UnixNano(), userID),
		UserID:        userID,
		Status:        status,
		TotalAmount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(100.00)),
		PaymentMethod: constants.PaymentMethodCard,
		PaymentStatus: constants.PaymentStatusSuccess,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderServiceCancelPending(t *testing.T) {
	db := newOrderTestDB(t, "order_service_cancel_pending")
	svc := NewOrderService(repository.NewOrderRepository(db), nil)

	order := seedOrder(t, db, 1, constants.OrderStatusPending)

	canceled, err := svc.Cancel(1, order.ID)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCancelled {
		t.Fatalf("status expected cancelled, got %s", canceled.Status)
	}
	if canceled.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}
}

func TestOrderServiceCancelProcessing(t *testing.T) {
	db := newOrderTestDB(t, "order_service_cancel_processing")
	svc := NewOrderService(repository.NewOrderRepository(db), nil)

	order := seedOrder(t, db, 1, constants.OrderStatusProcessing)

	canceled, err := svc.Cancel(1, order.ID)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCancelled {
		t.Fatalf("status expected cancelled, got %s", canceled.Status)
	}
}

func TestOrderServiceCancelShipped(t *testing.T) {
	db := newOrderTestDB(t, "order_service_cancel_shipped")
	svc := NewOrderService(repository.NewOrderRepository(db), nil)

	order := seedOrder(t, db, 1, constants.OrderStatusShipped)

	if _, err := svc.Cancel(1, order.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got: %v", err)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusShipped {
		t.Fatalf("shipped order must stay shipped, got %s", stored.Status)
	}
}

func TestOrderServiceCancelForeignOrder(t *testing.T) {
	db := newOrderTestDB(t, "order_service_cancel_foreign")
	svc := NewOrderService(repository.NewOrderRepository(db), nil)

	order := seedOrder(t, db, 1, constants.OrderStatusPending)

	if _, err := svc.Cancel(2, order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user's order expected ErrNotFound, got: %v", err)
	}
}

func TestOrderServiceGetByUser(t *testing.T) {
	db := newOrderTestDB(t, "order_service_get")
	svc := NewOrderService(repository.NewOrderRepository(db), nil)

	order := seedOrder(t, db, 1, constants.OrderStatusPending)

	got, err := svc.GetByUser(1, order.ID)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if got.OrderNo != order.OrderNo {
		t.Fatalf("order no mismatch: %s vs %s", got.OrderNo, order.OrderNo)
	}

	if _, err := svc.GetByUser(2, order.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user's order expected ErrNotFound, got: %v", err)
	}
	if _, err := svc.GetByUser(0, order.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got: %v", err)
	}
}

func TestOrderServiceListByUser(t *testing.T) {
	db := newOrderTestDB(t, "order_service_list")
	svc := NewOrderService(repository.NewOrderRepository(db), nil)

	seedOrder(t, db, 1, constants.OrderStatusPending)
	seedOrder(t, db, 1, constants.OrderStatusDelivered)
	seedOrder(t, db, 1, constants.OrderStatusCancelled)
	seedOrder(t, db, 2, constants.OrderStatusPending)

	result, err := svc.ListByUser(1, 1, 2, "")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("total expected 3, got %d", result.Total)
	}
	if len(result.Orders) != 2 {
		t.Fatalf("page size 2 expected 2 orders, got %d", len(result.Orders))
	}

	result, err = svc.ListByUser(1, 1, 20, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("ListByUser with status failed: %v", err)
	}
	if result.Total != 1 || len(result.Orders) != 1 {
		t.Fatalf("status filter expected a single order, got total %d len %d", result.Total, len(result.Orders))
	}
	if result.Orders[0].Status != constants.OrderStatusCancelled {
		t.Fatalf("filtered order status expected cancelled, got %s", result.Orders[0].Status)
	}
}

func TestCanCancel(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{constants.OrderStatusPending, true},
		{constants.OrderStatusProcessing, true},
		{constants.OrderStatusShipped, false},
		{constants.OrderStatusOutForDelivery, false},
		{constants.OrderStatusDelivered, false},
		{constants.OrderStatusCancelled, false},
		{"unknown", false},
	}
	for _, tc := range cases {
		if got := CanCancel(tc.status); got != tc.want {
			t.Fatalf("CanCancel(%s) expected %v, got %v", tc.status, tc.want, got)
		}
	}
}
