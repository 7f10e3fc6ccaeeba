package repository

import (
	"errors"
	"strings"

	"github.com/shopora-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品目录数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// List 按筛选条件分页查询商品，置顶权重优先、新品靠前
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.filteredQuery(filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := applyPagination(query, filter.Page, filter.PageSize).
		Order("sort_order DESC, created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormProductRepository) filteredQuery(filter ProductListFilter) *gorm.DB {
	query := r.db.Model(&models.Product{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"name", "description"})
		query = query.Where(condition, repeatLikeArgs("%"+search+"%", argCount)...)
	}
	return query
}

// GetByID 根据 ID 查找商品，未命中返回 nil
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	switch {
	case err == nil:
		return &product, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

// ListByIDs 批量查找商品，顺序不保证
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	products := make([]models.Product, 0, len(ids))
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}
