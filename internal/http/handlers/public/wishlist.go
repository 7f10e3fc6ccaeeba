package public

import (
	"strconv"

	"github.com/shopora-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// WishlistItemRequest 收藏请求
type WishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist 获取收藏列表
func (h *Handler) GetWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.WishlistService.ListByUser(uid)
	if err != nil {
		respondWithMappedError(c, err, wishlistMutationErrorRules, response.CodeInternal, "wishlist fetch failed")
		return
	}
	response.Success(c, gin.H{
		"items": items,
		"count": len(items),
	})
}

// AddWishlistItem 收藏商品，重复收藏返回错误且不改变已有数据
func (h *Handler) AddWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.WishlistService.Add(uid, req.ProductID); err != nil {
		respondWithMappedError(c, err, wishlistMutationErrorRules, response.CodeInternal, "wishlist update failed")
		return
	}
	response.Success(c, gin.H{"added": true})
}

// DeleteWishlistItem 取消收藏，重复删除同样返回成功
func (h *Handler) DeleteWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid wishlist item", nil)
		return
	}
	if err := h.WishlistService.Remove(uid, uint(productID)); err != nil {
		respondWithMappedError(c, err, wishlistMutationErrorRules, response.CodeInternal, "wishlist update failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ToggleWishlistItem 切换收藏状态，返回切换后是否已收藏
func (h *Handler) ToggleWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	wishlisted, err := h.WishlistService.Toggle(uid, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, wishlistMutationErrorRules, response.CodeInternal, "wishlist update failed")
		return
	}
	response.Success(c, gin.H{"wishlisted": wishlisted})
}
