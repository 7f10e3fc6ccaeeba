package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	category := strings.TrimSpace(c.Query("category"))
	search := strings.TrimSpace(c.Query("search"))

	result, err := h.ProductService.List(c.Request.Context(), page, pageSize, category, search)
	if err != nil {
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	pagination := response.BuildPagination(result.Page, result.PageSize, result.Total)
	response.SuccessWithPage(c, result.Products, pagination)
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.ProductService.GetByID(uint(productID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	response.Success(c, product)
}
