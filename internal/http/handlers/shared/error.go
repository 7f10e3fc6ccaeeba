package shared

import (
	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 返回绑定了 request_id 的日志实例，拿不到时退回全局日志
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c != nil {
		if value, ok := c.Get("request_id"); ok {
			if id, ok := value.(string); ok && id != "" {
				return logger.SW("request_id", id)
			}
		}
	}
	return logger.S()
}

// RespondError 写出错误响应。带原始错误时先记一条 handler_error 日志，
// 响应体只暴露映射后的业务码和文案。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}
