package shared

import (
	"github.com/shopora-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextUint 从上下文读取 uint 值，读取失败时已写出错误响应
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "authentication required", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return nonNegativeUint(c, int64(v))
	case float64:
		return nonNegativeUint(c, int64(v))
	default:
		RespondError(c, response.CodeInternal, "unexpected context value type", nil)
		return 0, false
	}
}

func nonNegativeUint(c *gin.Context, v int64) (uint, bool) {
	if v < 0 {
		RespondError(c, response.CodeBadRequest, "invalid context value", nil)
		return 0, false
	}
	return uint(v), true
}
