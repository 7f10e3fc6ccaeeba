package public

import (
	"strconv"
	"strings"

	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 获取订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	status := strings.TrimSpace(c.Query("status"))

	result, err := h.OrderService.ListByUser(uid, page, pageSize, status)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order fetch failed")
		return
	}

	pagination := response.BuildPagination(result.Page, result.PageSize, result.Total)
	response.SuccessWithPage(c, result.Orders, pagination)
}

// GetOrder 获取订单详情，附带状态进度
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.GetByUser(uid, uint(orderID))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order fetch failed")
		return
	}

	response.Success(c, gin.H{
		"order":      order,
		"progress":   service.StatusProgress(order.Status),
		"can_cancel": service.CanCancel(order.Status),
	})
}

// CancelOrder 用户取消订单，仅待处理/处理中订单可取消
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.Cancel(uid, uint(orderID))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order cancel failed")
		return
	}

	response.Success(c, gin.H{
		"order":    order,
		"progress": service.StatusProgress(order.Status),
	})
}
