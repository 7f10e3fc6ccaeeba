package constants

// 订单状态常量
const (
	OrderStatusPending        = "pending"
	OrderStatusProcessing     = "processing"
	OrderStatusShipped        = "shipped"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// CancellableOrderStatuses 允许买家取消的订单状态
var CancellableOrderStatuses = []string{OrderStatusPending, OrderStatusProcessing}

// 支付方式常量
const (
	PaymentMethodUPI   = "upi"
	PaymentMethodPaytm = "paytm"
	PaymentMethodCard  = "card"
)

// SupportedPaymentMethods 支持的支付方式顺序
var SupportedPaymentMethods = []string{PaymentMethodUPI, PaymentMethodPaytm, PaymentMethodCard}

// 支付状态常量
const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskOrderConfirmation  = "order:confirmation"
	TaskOrderStatusChanged = "order:status_changed"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "sp"
)

// 缺省商品快照常量（商品被下架或删除后仍需展示收藏项）
const (
	PlaceholderProductName = "Unknown Product"
)
