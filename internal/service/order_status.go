package service

import (
	"github.com/shopora-next/internal/constants"
)

// OrderStatusStep 订单进度节点
type OrderStatusStep struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// OrderStatusProgress 订单进度
type OrderStatusProgress struct {
	Steps     []OrderStatusStep `json:"steps"`
	Percent   int               `json:"percent"`
	Cancelled bool              `json:"cancelled"`
}

// progressStatuses 配送进度节点顺序
var progressStatuses = []struct {
	status string
	label  string
}{
	{constants.OrderStatusPending, "Order Placed"},
	{constants.OrderStatusShipped, "Shipped"},
	{constants.OrderStatusOutForDelivery, "Out for Delivery"},
	{constants.OrderStatusDelivered, "Delivered"},
}

// StatusProgress 计算订单状态进度。
// cancelled 为终态，不参与进度百分比。
func StatusProgress(status string) OrderStatusProgress {
	if status == constants.OrderStatusCancelled {
		return OrderStatusProgress{Cancelled: true}
	}

	currentIndex := -1
	for idx, step := range progressStatuses {
		if step.status == status {
			currentIndex = idx
			break
		}
	}
	// processing 尚未发货，视作仍停留在第一个节点
	if status == constants.OrderStatusProcessing {
		currentIndex = 0
	}

	steps := make([]OrderStatusStep, 0, len(progressStatuses))
	for idx, step := range progressStatuses {
		steps = append(steps, OrderStatusStep{
			Status:    step.status,
			Label:     step.label,
			Completed: currentIndex >= 0 && idx <= currentIndex,
		})
	}

	percent := 0
	if currentIndex >= 0 {
		percent = (currentIndex + 1) * 100 / len(progressStatuses)
	}
	return OrderStatusProgress{
		Steps:   steps,
		Percent: percent,
	}
}
