package public

import (
	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 下单请求
type CheckoutRequest struct {
	ShippingAddress service.ShippingAddressInput `json:"shipping_address"`
	PaymentMethod   string                       `json:"payment_method"`
	UpiID           string                       `json:"upi_id"`
}

// Checkout 下单：校验表单、扣款、落库并清空购物车
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.CheckoutService.PlaceOrder(c.Request.Context(), service.PlaceOrderInput{
		UserID:          uid,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		UpiID:           req.UpiID,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, gin.H{
		"order":             order,
		"order_no":          order.OrderNo,
		"payment_reference": order.PaymentReference,
	})
}
