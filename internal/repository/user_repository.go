package repository

import (
	"errors"

	"github.com/shopora-next/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户账户数据访问接口，未命中时返回 nil 而非错误
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByEmail 根据邮箱查找用户，邮箱在服务层已归一化为小写
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.firstUser(r.db.Where("email = ?", email))
}

// GetByID 根据 ID 查找用户
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	return r.firstUser(r.db.Where("id = ?", id))
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update 保存用户全部字段
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *GormUserRepository) firstUser(tx *gorm.DB) (*models.User, error) {
	var user models.User
	err := tx.First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, err
	}
}
