package repository

import (
	"errors"

	"github.com/shopora-next/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository 用户资料数据访问接口
type ProfileRepository interface {
	GetByUserID(userID uint) (*models.Profile, error)
	Upsert(profile *models.Profile) error
}

// GormProfileRepository GORM 实现
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建用户资料仓库
func NewProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// GetByUserID 根据用户 ID 获取资料
func (r *GormProfileRepository) GetByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert 创建或更新用户资料
func (r *GormProfileRepository) Upsert(profile *models.Profile) error {
	if profile == nil {
		return nil
	}
	var existing models.Profile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}
