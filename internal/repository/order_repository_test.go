package repository

import (
	"testing"
	"time"

	"github.com/shopora-next/internal/constants"
	"github.com/shopora-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T, name string) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func createTestOrder(t *testing.T, repo *GormOrderRepository, userID uint, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:       "SP" + time.Now().Format("20060102150405.000000000"),
		UserID:        userID,
		Status:        status,
		TotalAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(200)),
		PaymentMethod: constants.PaymentMethodUPI,
		PaymentStatus: constants.PaymentStatusSuccess,
	}
	items := []models.OrderItem{
		{
			ProductID:   1,
			ProductName: "Test Product",
			UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
			Quantity:    2,
			TotalPrice:  models.NewMoneyFromDecimal(decimal.NewFromInt(200)),
		},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestCreateLinksItemsToOrder(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t, "order_repo_create")
	order := createTestOrder(t, repo, 7, constants.OrderStatusPending)

	var count int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("order items want 1 got %d", count)
	}
}

func TestCancelIfCancellableOnPendingOrder(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t, "order_repo_cancel_pending")
	order := createTestOrder(t, repo, 7, constants.OrderStatusPending)

	affected, err := repo.CancelIfCancellable(order.ID, 7, time.Now())
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("cancel affected want 1 got %d", affected)
	}

	var got models.Order
	if err := db.First(&got, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if got.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", got.Status)
	}
	if got.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}
}

func TestCancelIfCancellableRejectsShippedOrder(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t, "order_repo_cancel_shipped")
	order := createTestOrder(t, repo, 7, constants.OrderStatusShipped)

	affected, err := repo.CancelIfCancellable(order.ID, 7, time.Now())
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("cancel on shipped affected want 0 got %d", affected)
	}

	var got models.Order
	if err := db.First(&got, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if got.Status != constants.OrderStatusShipped {
		t.Fatalf("status should stay shipped, got %s", got.Status)
	}
}

func TestCancelIfCancellableRejectsForeignOrder(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t, "order_repo_cancel_foreign")
	order := createTestOrder(t, repo, 7, constants.OrderStatusPending)

	affected, err := repo.CancelIfCancellable(order.ID, 8, time.Now())
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("cancel foreign order affected want 0 got %d", affected)
	}
}

func TestResolveReceiverEmailByOrderID(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t, "order_repo_receiver")
	user := models.User{Email: "buyer@example.com", PasswordHash: "x", Status: constants.UserStatusActive}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	order := createTestOrder(t, repo, user.ID, constants.OrderStatusPending)

	email, err := repo.ResolveReceiverEmailByOrderID(order.ID)
	if err != nil {
		t.Fatalf("resolve receiver failed: %v", err)
	}
	if email != "buyer@example.com" {
		t.Fatalf("receiver want buyer@example.com got %s", email)
	}
}
