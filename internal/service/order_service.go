package service

import (
	"time"

	"github.com/shopora-next/internal/constants"
	"github.com/shopora-next/internal/logger"
	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/queue"
	"github.com/shopora-next/internal/repository"
)

// OrderListResult 订单列表结果
type OrderListResult struct {
	Orders   []models.Order `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// OrderService 订单查询与取消服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// ListByUser 获取用户订单列表（按下单时间倒序）
func (s *OrderService) ListByUser(userID uint, page, pageSize int, status string) (*OrderListResult, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	orders, total, err := s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   status,
	})
	if err != nil {
		return nil, err
	}
	return &OrderListResult{
		Orders:   orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByUser 获取用户订单详情
func (s *OrderService) GetByUser(userID, orderID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// Cancel 取消订单。仅 pending/processing 状态可取消，条件更新保证并发流转下不会误取消。
func (s *OrderService) Cancel(userID, orderID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	affected, err := s.orderRepo.CancelIfCancellable(orderID, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidState
	}

	canceled, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if canceled == nil {
		return nil, ErrNotFound
	}

	s.enqueueStatusChanged(canceled)

	return canceled, nil
}

// enqueueStatusChanged 入队状态变更通知，失败只记录日志
func (s *OrderService) enqueueStatusChanged(order *models.Order) {
	if s.queueClient == nil || order == nil {
		return
	}
	if err := s.queueClient.EnqueueOrderStatusChanged(queue.OrderStatusChangedPayload{
		OrderID: order.ID,
		Status:  order.Status,
	}); err != nil {
		logger.Warnw("order_enqueue_status_changed_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"status", order.Status,
			"error", err,
		)
	}
}

// CanCancel 判断订单当前状态是否允许取消
func CanCancel(status string) bool {
	for _, candidate := range constants.CancellableOrderStatuses {
		if status == candidate {
			return true
		}
	}
	return false
}
