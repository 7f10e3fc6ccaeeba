package public

import (
	"strconv"

	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest 更新购物车项请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart fetch failed")
		return
	}

	response.Success(c, gin.H{
		"items":       items,
		"total_items": service.TotalItems(items),
		"total_price": service.TotalPrice(items),
	})
}

// AddCartItem 加入购物车，同一商品重复加入时数量累加
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}); err != nil {
		respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"added": true})
}

// UpdateCartItem 更新购物车项数量，数量为 0 等价于移除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart item", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.CartService.UpdateQuantity(uid, uint(itemID), req.Quantity); err != nil {
		respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 删除购物车项，重复删除同样返回成功
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart item", nil)
		return
	}
	if err := h.CartService.RemoveItem(uid, uint(itemID)); err != nil {
		respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
