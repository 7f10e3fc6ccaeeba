package repository

import (
	"errors"

	"github.com/shopora-next/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository 收藏数据访问接口
type WishlistRepository interface {
	ListByUser(userID uint) ([]models.WishlistItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	DeleteByUserAndProduct(userID, productID uint) error
	CountByUser(userID uint) (int64, error)
}

// GormWishlistRepository GORM 实现
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建收藏仓库
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// ListByUser 获取用户收藏列表（按收藏时间倒序，商品已删除时仍返回收藏行）
func (r *GormWishlistRepository) ListByUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByUserAndProduct 获取用户指定商品的收藏项
func (r *GormWishlistRepository) GetByUserAndProduct(userID, productID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 新增收藏项，唯一索引冲突原样返回由服务层映射
func (r *GormWishlistRepository) Create(item *models.WishlistItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// DeleteByUserAndProduct 删除收藏项（不存在时不报错）
func (r *GormWishlistRepository) DeleteByUserAndProduct(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{}).Error
}

// CountByUser 统计用户收藏数量
func (r *GormWishlistRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.WishlistItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
