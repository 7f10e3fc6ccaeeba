package main

import (
	"fmt"

	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/constants"
	"github.com/shopora-next/internal/logger"
	"github.com/shopora-next/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加商品
	products := []models.Product{
		{
			Name:          "Wireless Bluetooth Earphones",
			Description:   "High quality sound, long battery life, comfortable to wear",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			ImageURL:      "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			Images:        models.StringArray([]string{"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800"}),
			Category:      "electronics",
			StockQuantity: 120,
			SortOrder:     400,
			IsActive:      true,
		},
		{
			Name:          "Smart Watch",
			Description:   "Health monitoring, fitness tracking, message notifications",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
			ImageURL:      "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800",
			Images:        models.StringArray([]string{"https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800"}),
			Category:      "electronics",
			StockQuantity: 60,
			SortOrder:     390,
			IsActive:      true,
		},
		{
			Name:          "Portable Power Bank",
			Description:   "High capacity, fast charging, multi-device compatible",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
			ImageURL:      "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800",
			Images:        models.StringArray([]string{"https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800"}),
			Category:      "accessories",
			StockQuantity: 200,
			SortOrder:     380,
			IsActive:      true,
		},
		{
			Name:          "Multi-function Backpack",
			Description:   "Large capacity, waterproof and anti-theft, USB charging port",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(79.99)),
			ImageURL:      "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			Images:        models.StringArray([]string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800"}),
			Category:      "lifestyle",
			StockQuantity: 80,
			SortOrder:     370,
			IsActive:      true,
		},
		{
			Name:          "Mechanical Keyboard",
			Description:   "Hot-swappable switches, RGB backlight, aluminum frame",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(129.99)),
			ImageURL:      "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?w=800",
			Images:        models.StringArray([]string{"https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?w=800"}),
			Category:      "electronics",
			StockQuantity: 45,
			SortOrder:     360,
			IsActive:      true,
		},
		{
			Name:          "Discontinued Demo Product",
			Description:   "Inactive product for storefront filtering demo",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(9.99)),
			Category:      "lifestyle",
			StockQuantity: 0,
			SortOrder:     10,
			IsActive:      false,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Description = prod.Description
			existing.Price = prod.Price
			existing.ImageURL = prod.ImageURL
			existing.Images = prod.Images
			existing.Category = prod.Category
			existing.StockQuantity = prod.StockQuantity
			existing.SortOrder = prod.SortOrder
			existing.IsActive = prod.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	// 添加演示账号
	demoEmail := "demo@shopora.local"
	var existingUser models.User
	if err := models.DB.Where("email = ?", demoEmail).First(&existingUser).Error; err != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("shopora123"), bcrypt.DefaultCost)
		if hashErr != nil {
			stdLog.Printf("Failed to hash demo password: %v", hashErr)
		} else {
			user := models.User{
				Email:        demoEmail,
				PasswordHash: string(hash),
				Status:       constants.UserStatusActive,
			}
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create demo user: %v", err)
			} else {
				stdLog.Printf("Created demo user: %s", demoEmail)
			}
		}
	} else {
		stdLog.Printf("Demo user already exists: %s", demoEmail)
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 6 Products (1 inactive for filtering demo)")
	fmt.Println("- 1 Demo user (demo@shopora.local / shopora123)")
}
