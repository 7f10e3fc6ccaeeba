package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/constants"
	"github.com/shopora-next/internal/http/response"
	"github.com/shopora-next/internal/repository"
	"github.com/shopora-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

var (
	defaultCORSMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"Authorization",
		"Cache-Control",
		"X-Requested-With",
		"X-CSRF-Token",
	}
)

// CORSMiddleware 跨域中间件，预检请求直接返回 204
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	methodsHeader := strings.Join(fallbackList(cfg.AllowedMethods, defaultCORSMethods), ", ")
	headersHeader := strings.Join(fallbackList(cfg.AllowedHeaders, defaultCORSHeaders), ", ")

	return func(c *gin.Context) {
		header := c.Writer.Header()
		if origin := resolveAllowedOrigin(c.GetHeader("Origin"), origins, cfg.AllowCredentials); origin != "" {
			header.Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				header.Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			header.Set("Access-Control-Allow-Credentials", "true")
		}
		header.Set("Access-Control-Allow-Headers", headersHeader)
		header.Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			header.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func fallbackList(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

// resolveAllowedOrigin 计算响应的 Allow-Origin 值。
// 通配符配合凭据时回显请求来源，精确匹配忽略大小写。
func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 透传或生成请求 ID，写入上下文与响应头
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	if value, ok := c.Get(requestIDKey); ok {
		if requestID, ok := value.(string); ok {
			return requestID
		}
	}
	return ""
}

// UserJWTAuthMiddleware 用户 JWT 鉴权中间件。
// 仅接受 HS256 令牌，校验通过后确认账户仍为启用状态。
func UserJWTAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		if secretKey == "" {
			abortUnauthorized(c, "jwt secret missing")
			return
		}
		if userRepo == nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "authorization header invalid")
			return
		}

		claims := &service.UserJWTClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			abortUnauthorized(c, "invalid token")
			return
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil || user == nil {
			abortUnauthorized(c, "invalid token")
			return
		}
		if !isActiveUserStatus(user.Status) {
			abortUnauthorized(c, "account disabled")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

func bearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, msg string) {
	response.Unauthorized(c, msg)
	c.Abort()
}

func isActiveUserStatus(status string) bool {
	return strings.ToLower(strings.TrimSpace(status)) == constants.UserStatusActive
}
