package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopora-next/internal/cache"
	"github.com/shopora-next/internal/logger"
	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/repository"
)

const productListCacheTTL = 60 * time.Second

// ProductListResult 商品列表结果
type ProductListResult struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ProductService 商品查询服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List 商品列表（仅上架商品）。
// 无搜索词的页走短 TTL 缓存，减少首页反复查询。
func (s *ProductService) List(ctx context.Context, page, pageSize int, category, search string) (*ProductListResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	category = strings.TrimSpace(category)
	search = strings.TrimSpace(search)

	cacheable := search == ""
	cacheKey := fmt.Sprintf("products:list:%s:%d:%d", category, page, pageSize)
	if cacheable {
		var cached ProductListResult
		hit, err := cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warnw("product_list_cache_read_failed", "key", cacheKey, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   category,
		Search:     search,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	result := &ProductListResult{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if cacheable {
		if err := cache.SetJSON(ctx, cacheKey, result, productListCacheTTL); err != nil {
			logger.Warnw("product_list_cache_write_failed", "key", cacheKey, "error", err)
		}
	}
	return result, nil
}

// GetByID 商品详情（仅上架商品）
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrNotFound
	}
	return product, nil
}
