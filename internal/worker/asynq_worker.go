package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopora-next/internal/logger"
	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/provider"
	"github.com/shopora-next/internal/queue"
	"github.com/shopora-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmation, c.handleOrderConfirmation)
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
}

func (c *Consumer) handleOrderConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, receiverEmail, err := c.loadOrderWithReceiver(payload.OrderID)
	if err != nil {
		return err
	}
	if order == nil || receiverEmail == "" {
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_confirmation_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	input := service.OrderStatusEmailInput{
		OrderNo: order.OrderNo,
		Status:  order.Status,
		Amount:  order.TotalAmount,
	}
	if err := c.EmailService.SendOrderConfirmationEmail(receiverEmail, input); err != nil {
		logger.Warnw("worker_order_confirmation_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleOrderStatusChanged(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_changed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_changed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_changed_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, receiverEmail, err := c.loadOrderWithReceiver(payload.OrderID)
	if err != nil {
		return err
	}
	if order == nil || receiverEmail == "" {
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_changed_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderNo: order.OrderNo,
		Status:  status,
		Amount:  order.TotalAmount,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiverEmail, input); err != nil {
		logger.Warnw("worker_order_status_changed_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) loadOrderWithReceiver(orderID uint) (order *models.Order, receiverEmail string, err error) {
	order, err = c.OrderRepo.GetByID(orderID)
	if err != nil {
		logger.Warnw("worker_fetch_order_failed", "order_id", orderID, "error", err)
		return nil, "", err
	}
	if order == nil {
		logger.Debugw("worker_skip_order_not_found", "order_id", orderID)
		return nil, "", nil
	}
	receiverEmail, err = c.OrderRepo.ResolveReceiverEmailByOrderID(order.ID)
	if err != nil {
		logger.Warnw("worker_resolve_receiver_failed", "order_id", order.ID, "error", err)
		return nil, "", err
	}
	if receiverEmail == "" {
		logger.Debugw("worker_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return order, "", nil
	}
	return order, receiverEmail, nil
}
