package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopora-next/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	Message       string
}

// 计数与过期在脚本内一次完成，避免 INCR 与 EXPIRE 之间的竞态
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware Redis 固定窗口限流中间件。
// 客户端或规则缺失时直通，Redis 故障时拒绝请求。
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := rateLimitKey(c, rule, keyFunc)
		count, ttlSeconds, err := runFixedWindow(c, client, key, rule.WindowSeconds)
		if err != nil {
			response.Error(c, response.CodeInternal, "rate limiter unavailable")
			c.Abort()
			return
		}

		if count > int64(rule.MaxRequests) {
			rejectOverLimit(c, rule, ttlSeconds)
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context, rule RateLimitRule, keyFunc RateLimitKeyFunc) string {
	key := ""
	if keyFunc != nil {
		key = strings.TrimSpace(keyFunc(c))
	}
	if key == "" {
		key = c.ClientIP()
	}
	if rule.Prefix != "" {
		key = rule.Prefix + ":" + key
	}
	return key
}

func runFixedWindow(c *gin.Context, client *redis.Client, key string, windowSeconds int) (int64, int64, error) {
	result, err := fixedWindowScript.Run(c.Request.Context(), client, []string{key}, windowSeconds).Result()
	if err != nil {
		return 0, 0, err
	}
	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return 0, 0, fmt.Errorf("unexpected script result: %v", result)
	}
	count, ok := toInt64(values[0])
	if !ok {
		return 0, 0, fmt.Errorf("unexpected counter value: %v", values[0])
	}
	ttl, _ := toInt64(values[1])
	return count, ttl, nil
}

func rejectOverLimit(c *gin.Context, rule RateLimitRule, ttlSeconds int64) {
	waitSeconds := int(ttlSeconds)
	if waitSeconds < 1 {
		waitSeconds = rule.WindowSeconds
	}
	if waitSeconds < 1 {
		waitSeconds = 1
	}
	msg := strings.TrimSpace(rule.Message)
	if msg == "" {
		msg = "too many requests"
	}
	response.Error(c, response.CodeTooManyRequests, fmt.Sprintf("%s, retry in %d seconds", msg, waitSeconds))
	c.Abort()
}

// KeyByIP 使用客户端 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用请求体 JSON 字段加客户端 IP 作为限流 key，
// 字段缺失或请求体不可解析时退回纯 IP
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(strings.TrimSpace(readJSONField(c, field)))
		if value == "" {
			return c.ClientIP()
		}
		return value + "|" + c.ClientIP()
	}
}

// readJSONField 读取请求体中的字符串字段，读取后恢复 body 供后续 handler 使用
func readJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	if len(body) == 0 {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if text, ok := payload[field].(string); ok {
		return strings.TrimSpace(text)
	}
	return ""
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	default:
		return 0, false
	}
}
