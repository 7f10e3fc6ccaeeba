package models

import (
	"time"
)

// Profile 用户资料表（收货偏好，与账号一对一）
type Profile struct {
	ID        uint      `gorm:"primarykey" json:"id"`                  // 主键
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`   // 用户ID
	FullName  string    `gorm:"type:varchar(100)" json:"full_name"`    // 姓名
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`         // 电话
	Address   JSON      `gorm:"type:json" json:"address"`              // 地址（street/city/state/zipCode/country）
	CreatedAt time.Time `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`               // 更新时间
}

// TableName 指定表名
func (Profile) TableName() string {
	return "profiles"
}
