package models

import (
	"time"

	"gorm.io/gorm"
)

// ShippingAddress 收货地址（内嵌到订单，所有字段下单时必填）
type ShippingAddress struct {
	FullName      string `gorm:"type:varchar(100);not null" json:"full_name"`     // 收货人姓名
	PhoneNumber   string `gorm:"type:varchar(30);not null" json:"phone_number"`   // 联系电话
	StreetAddress string `gorm:"type:varchar(300);not null" json:"street_address"`// 街道地址
	City          string `gorm:"type:varchar(100);not null" json:"city"`          // 城市
	State         string `gorm:"type:varchar(100);not null" json:"state"`         // 省/州
	ZipCode       string `gorm:"type:varchar(20);not null" json:"zip_code"`       // 邮编
	Country       string `gorm:"type:varchar(100);not null" json:"country"`       // 国家
}

// Order 订单表
type Order struct {
	ID               uint            `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo          string          `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	UserID           uint            `gorm:"index;not null" json:"user_id"`                             // 用户ID
	Status           string          `gorm:"index;not null" json:"status"`                              // 订单状态
	TotalAmount      Money           `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 实付金额
	Shipping         ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"` // 收货地址
	PaymentMethod    string          `gorm:"type:varchar(20);not null" json:"payment_method"`           // 支付方式
	PaymentStatus    string          `gorm:"type:varchar(20);not null" json:"payment_status"`           // 支付状态
	PaymentReference string          `gorm:"type:varchar(100)" json:"payment_reference"`                // 支付参考号
	CanceledAt       *time.Time      `gorm:"index" json:"canceled_at"`                                  // 取消时间
	CreatedAt        time.Time       `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt        time.Time       `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`                                            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
