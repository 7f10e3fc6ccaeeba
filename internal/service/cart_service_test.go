package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, active bool) models.Product {
	t.Helper()
	product := models.Product{
		Name:          name,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Category:      "electronics",
		StockQuantity: 10,
		IsActive:      active,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartServiceRequiresAuth(t *testing.T) {
	svc := NewCartService(nil, nil)

	if _, err := svc.ListByUser(0); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("ListByUser expected ErrUnauthenticated, got: %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{ProductID: 1, Quantity: 1}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("AddItem expected ErrUnauthenticated, got: %v", err)
	}
	if err := svc.UpdateQuantity(0, 1, 2); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("UpdateQuantity expected ErrUnauthenticated, got: %v", err)
	}
	if err := svc.Clear(0); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("Clear expected ErrUnauthenticated, got: %v", err)
	}
}

func TestCartServiceAddItemAccumulates(t *testing.T) {
	db := newCartTestDB(t, "cart_service_accumulate")
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	product := seedProduct(t, db, "Wireless Earphones", 149.75, true)

	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("first AddItem failed: %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("second AddItem failed: %v", err)
	}

	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected a single cart row, got %d", len(details))
	}
	if details[0].Quantity != 5 {
		t.Fatalf("expected accumulated quantity 5, got %d", details[0].Quantity)
	}
}

func TestCartServiceAddItemDefaultsQuantityToOne(t *testing.T) {
	db := newCartTestDB(t, "cart_service_default_qty")
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	product := seedProduct(t, db, "Smart Watch", 199.99, true)

	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(details) != 1 || details[0].Quantity != 1 {
		t.Fatalf("expected one row with quantity 1, got: %+v", details)
	}

	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative quantity expected ErrInvalidInput, got: %v", err)
	}
}

func TestCartServiceAddItemRejectsUnavailableProduct(t *testing.T) {
	db := newCartTestDB(t, "cart_service_unavailable")
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	inactive := seedProduct(t, db, "Discontinued", 9.99, false)

	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: inactive.ID, Quantity: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive product expected ErrNotFound, got: %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: 999, Quantity: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing product expected ErrNotFound, got: %v", err)
	}

	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("cart should stay empty, got %d rows", len(details))
	}
}

func TestCartServiceUpdateQuantityZeroRemoves(t *testing.T) {
	db := newCartTestDB(t, "cart_service_zero_removes")
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	product := seedProduct(t, db, "Power Bank", 49.99, true)
	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}

	if err := svc.UpdateQuantity(1, details[0].ItemID, 4); err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	details, err = svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if details[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", details[0].Quantity)
	}

	if err := svc.UpdateQuantity(1, details[0].ItemID, 0); err != nil {
		t.Fatalf("UpdateQuantity to zero failed: %v", err)
	}
	details, err = svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("quantity zero should remove the row, got %d rows", len(details))
	}
}

func TestCartServiceRemoveMissingItemIsNoop(t *testing.T) {
	db := newCartTestDB(t, "cart_service_remove_noop")
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	if err := svc.RemoveItem(1, 12345); err != nil {
		t.Fatalf("removing a missing item should succeed, got: %v", err)
	}
}

func TestCartServiceListDropsDeactivatedProducts(t *testing.T) {
	db := newCartTestDB(t, "cart_service_list_inactive")
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	keep := seedProduct(t, db, "Backpack", 79.99, true)
	gone := seedProduct(t, db, "Old Keyboard", 59.99, true)
	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: keep.ID, Quantity: 1}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: gone.ID, Quantity: 1}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", gone.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	details, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(details) != 1 || details[0].ProductID != keep.ID {
		t.Fatalf("expected only the active product, got: %+v", details)
	}

	var rows int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&rows).Error; err != nil {
		t.Fatalf("count cart rows failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("deactivated product row should be cleaned up, got %d rows", rows)
	}
}

func TestCartTotals(t *testing.T) {
	items := []CartItemDetail{
		{Quantity: 2, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(250.00))},
		{Quantity: 1, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(99.50))},
	}

	if got := TotalItems(items); got != 3 {
		t.Fatalf("TotalItems expected 3, got %d", got)
	}
	total := TotalPrice(items)
	if !total.Decimal.Equal(decimal.NewFromFloat(599.50)) {
		t.Fatalf("TotalPrice expected 599.50, got %s", total.Decimal.String())
	}

	if got := TotalItems(nil); got != 0 {
		t.Fatalf("TotalItems of empty cart expected 0, got %d", got)
	}
	if !TotalPrice(nil).Decimal.Equal(decimal.Zero) {
		t.Fatalf("TotalPrice of empty cart expected 0")
	}
}
