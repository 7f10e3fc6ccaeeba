package provider

import (
	"github.com/shopora-next/internal/cache"
	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/logger"
	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/queue"
	"github.com/shopora-next/internal/repository"
	"github.com/shopora-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	ProfileRepo  repository.ProfileRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
	OrderRepo    repository.OrderRepository

	// Services
	UserAuthService *service.UserAuthService
	ProfileService  *service.ProfileService
	ProductService  *service.ProductService
	CartService     *service.CartService
	WishlistService *service.WishlistService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
	EmailService    *service.EmailService
	PaymentGateway  service.PaymentGateway
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProfileRepo = repository.NewProfileRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProfileService = service.NewProfileService(c.ProfileRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo)
	c.PaymentGateway = service.NewSimulatedPaymentGateway(service.SimulatedGatewayOptions{
		SuccessRate: c.Config.Checkout.Payment.SuccessRate,
		MinDelayMS:  c.Config.Checkout.Payment.MinDelayMS,
		MaxDelayMS:  c.Config.Checkout.Payment.MaxDelayMS,
	})
	c.CheckoutService = service.NewCheckoutService(c.CartRepo, c.ProductRepo, c.OrderRepo, c.PaymentGateway, c.QueueClient)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
}
