package public

import (
	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest 更新资料请求
type UpdateProfileRequest struct {
	FullName string                 `json:"full_name"`
	Phone    string                 `json:"phone"`
	Address  map[string]interface{} `json:"address"`
}

// GetProfile 获取用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	profile, err := h.ProfileService.GetByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "profile fetch failed", err)
		return
	}
	response.Success(c, profile)
}

// UpdateProfile 更新用户资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	profile, err := h.ProfileService.Update(service.UpdateProfileInput{
		UserID:   uid,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "profile update failed", err)
		return
	}
	response.Success(c, profile)
}
