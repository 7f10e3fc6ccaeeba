package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/constants"

	"github.com/redis/go-redis/v9"
)

var (
	client  *redis.Client
	prefix  string
	enabled bool
)

// InitRedis 初始化 Redis 客户端，未启用时所有缓存操作退化为直通
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		enabled = false
		return nil
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix = strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = constants.RedisPrefixDefault
	}

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	enabled = true
	return nil
}

// Enabled 判断缓存是否启用
func Enabled() bool {
	return enabled && client != nil
}

// Client 获取 Redis 客户端，未启用时返回 nil
func Client() *redis.Client {
	if !Enabled() {
		return nil
	}
	return client
}

// GetJSON 读取 JSON 缓存，返回是否命中
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	val, err := client.Get(ctx, buildKey(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 写入 JSON 缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, buildKey(key), payload, ttl).Err()
}

func buildKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return prefix
	}
	return prefix + ":" + trimmed
}
