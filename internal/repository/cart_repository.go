package repository

import (
	"errors"

	"github.com/shopora-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	GetByID(userID, itemID uint) (*models.CartItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	AddQuantity(userID, productID uint, delta int) (int64, error)
	SetQuantity(userID, itemID uint, quantity int) error
	DeleteByID(userID, itemID uint) error
	ClearByUser(userID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser 获取用户购物车项（按加入时间倒序）
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 获取指定购物车项（仅限本人）
func (r *GormCartRepository) GetByID(userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByUserAndProduct 获取用户指定商品的购物车项
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 新增购物车项
func (r *GormCartRepository) Create(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// AddQuantity 累加已有购物车项的数量，返回受影响行数
func (r *GormCartRepository) AddQuantity(userID, productID uint, delta int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SetQuantity 覆盖购物车项数量（仅限本人）
func (r *GormCartRepository) SetQuantity(userID, itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity).Error
}

// DeleteByID 删除购物车项（不存在时不报错）
func (r *GormCartRepository) DeleteByID(userID, itemID uint) error {
	return r.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{}).Error
}

// ClearByUser 清空购物车
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
