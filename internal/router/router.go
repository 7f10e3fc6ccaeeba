package router

import (
	"fmt"
	"strings"

	"github.com/shopora-next/internal/cache"
	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/constants"
	publichandlers "github.com/shopora-next/internal/http/handlers/public"
	"github.com/shopora-next/internal/logger"
	"github.com/shopora-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.GET("/me/profile", publicHandler.GetProfile)
			user.PUT("/me/profile", publicHandler.UpdateProfile)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:item_id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:item_id", publicHandler.DeleteCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.GET("/wishlist", publicHandler.GetWishlist)
			user.POST("/wishlist/items", publicHandler.AddWishlistItem)
			user.POST("/wishlist/toggle", publicHandler.ToggleWishlistItem)
			user.DELETE("/wishlist/items/:product_id", publicHandler.DeleteWishlistItem)

			user.POST("/checkout", publicHandler.Checkout)

			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.POST("/orders/:id/cancel", publicHandler.CancelOrder)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
