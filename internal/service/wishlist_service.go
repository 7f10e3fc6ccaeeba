package service

import (
	"errors"
	"time"

	"github.com/shopora-next/internal/constants"
	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/repository"
)

// WishlistItemDetail 收藏项详情（用于响应）
type WishlistItemDetail struct {
	ItemID    uint           `json:"item_id"`
	ProductID uint           `json:"product_id"`
	CreatedAt time.Time      `json:"created_at"`
	Product   models.Product `json:"product"`
}

// WishlistService 收藏服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
}

// NewWishlistService 创建收藏服务
func NewWishlistService(wishlistRepo repository.WishlistRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo}
}

// ListByUser 获取用户收藏列表。
// 商品已被删除或下架时收藏行保留，返回占位商品快照。
func (s *WishlistService) ListByUser(userID uint) ([]WishlistItemDetail, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	items, err := s.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	details := make([]WishlistItemDetail, 0, len(items))
	for _, item := range items {
		detail := WishlistItemDetail{
			ItemID:    item.ID,
			ProductID: item.ProductID,
			CreatedAt: item.CreatedAt,
		}
		if item.Product != nil && item.Product.ID != 0 {
			detail.Product = *item.Product
		} else {
			detail.Product = placeholderProduct(item.ProductID)
		}
		details = append(details, detail)
	}
	return details, nil
}

// Add 收藏商品，重复收藏返回 ErrAlreadyExists 且不改变已有数据
func (s *WishlistService) Add(userID, productID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if productID == 0 {
		return ErrInvalidInput
	}
	existing, err := s.wishlistRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}
	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		// 双击等并发写入由唯一索引兜底
		if repository.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Remove 取消收藏，删除不存在的收藏视为成功
func (s *WishlistService) Remove(userID, productID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if productID == 0 {
		return ErrInvalidInput
	}
	return s.wishlistRepo.DeleteByUserAndProduct(userID, productID)
}

// Toggle 切换收藏状态，返回切换后是否已收藏
func (s *WishlistService) Toggle(userID, productID uint) (bool, error) {
	if userID == 0 {
		return false, ErrUnauthenticated
	}
	if productID == 0 {
		return false, ErrInvalidInput
	}
	existing, err := s.wishlistRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.Remove(userID, productID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.Add(userID, productID); err != nil {
		// 并发下已被收藏，按已收藏返回
		if errors.Is(err, ErrAlreadyExists) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Contains 判断商品是否已收藏
func (s *WishlistService) Contains(userID, productID uint) (bool, error) {
	if userID == 0 {
		return false, ErrUnauthenticated
	}
	if productID == 0 {
		return false, nil
	}
	existing, err := s.wishlistRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

// placeholderProduct 缺失商品的占位快照
func placeholderProduct(productID uint) models.Product {
	return models.Product{
		ID:            productID,
		Name:          constants.PlaceholderProductName,
		Price:         models.Money{},
		StockQuantity: 0,
	}
}
