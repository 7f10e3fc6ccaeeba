package queue

import (
	"encoding/json"

	"github.com/shopora-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmation 下单成功通知任务
	TaskOrderConfirmation = constants.TaskOrderConfirmation
	// TaskOrderStatusChanged 订单状态变更通知任务
	TaskOrderStatusChanged = constants.TaskOrderStatusChanged
)

// OrderConfirmationPayload 下单成功通知任务载荷
type OrderConfirmationPayload struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
}

// OrderStatusChangedPayload 订单状态变更任务载荷
type OrderStatusChangedPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// NewOrderConfirmationTask 创建下单成功通知任务
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmation, body), nil
}

// NewOrderStatusChangedTask 创建订单状态变更任务
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusChanged, body), nil
}
