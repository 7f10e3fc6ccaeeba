package public

import (
	"errors"

	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	result, err := h.UserAuthService.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "invalid email", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, "email already registered", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "register failed", err)
		}
		return
	}

	response.Success(c, authResultResponse(result))
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	result, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredential):
			respondError(c, response.CodeUnauthorized, "invalid email or password", nil)
		case errors.Is(err, service.ErrUserDisabled):
			respondError(c, response.CodeUnauthorized, "account disabled", nil)
		default:
			respondError(c, response.CodeInternal, "login failed", err)
		}
		return
	}

	response.Success(c, authResultResponse(result))
}

// GetCurrentUser 获取当前用户信息
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetByID(uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "user fetch failed", err)
		return
	}

	response.Success(c, userResponse(user))
}

func authResultResponse(result *service.RegisterResult) gin.H {
	return gin.H{
		"user":       userResponse(result.User),
		"token":      result.Token,
		"expires_at": result.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"status":        user.Status,
		"last_login_at": user.LastLoginAt,
		"created_at":    user.CreatedAt,
	}
}
