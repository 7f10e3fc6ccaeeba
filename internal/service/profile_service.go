package service

import (
	"strings"
	"time"

	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/repository"
)

// UpdateProfileInput 更新资料输入
type UpdateProfileInput struct {
	UserID   uint
	FullName string
	Phone    string
	Address  map[string]interface{}
}

// ProfileService 用户资料服务
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService 创建用户资料服务
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetByUser 获取用户资料，未填写过时返回空资料
func (s *ProfileService) GetByUser(userID uint) (*models.Profile, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &models.Profile{UserID: userID, Address: models.JSON{}}, nil
	}
	return profile, nil
}

// Update 创建或更新用户资料
func (s *ProfileService) Update(input UpdateProfileInput) (*models.Profile, error) {
	if input.UserID == 0 {
		return nil, ErrUnauthenticated
	}
	now := time.Now()
	profile := &models.Profile{
		UserID:    input.UserID,
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   models.JSON(input.Address),
		UpdatedAt: now,
		CreatedAt: now,
	}
	if profile.Address == nil {
		profile.Address = models.JSON{}
	}
	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
