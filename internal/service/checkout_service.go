package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopora-next/internal/constants"
	"github.com/shopora-next/internal/logger"
	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/queue"
	"github.com/shopora-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	UserID          uint
	ShippingAddress ShippingAddressInput
	PaymentMethod   string
	UpiID           string
}

// CheckoutService 下单服务。
// 下单流程：鉴权 → 读取购物车 → 表单校验 → 扣款 → 事务落库（订单 + 订单项 + 清空购物车）→ 入队通知。
type CheckoutService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	gateway     PaymentGateway
	queueClient *queue.Client
}

// NewCheckoutService 创建下单服务
func NewCheckoutService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	gateway PaymentGateway,
	queueClient *queue.Client,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		queueClient: queueClient,
	}
}

// PlaceOrder 下单。任一环节失败则后续环节不执行：
// 表单校验失败与扣款失败都不产生任何写入，购物车保持原样；
// 落库阶段订单、订单项与清空购物车在同一事务内，失败整体回滚。
func (s *CheckoutService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrUnauthenticated
	}

	cartItems, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	if err := validateCheckoutForm(input.ShippingAddress, input.PaymentMethod, input.UpiID); err != nil {
		return nil, err
	}

	orderItems, totalAmount, err := s.buildOrderItems(cartItems)
	if err != nil {
		return nil, err
	}

	method := strings.ToLower(strings.TrimSpace(input.PaymentMethod))
	result, err := s.gateway.Charge(ctx, method, totalAmount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:     generateOrderNo(),
		UserID:      input.UserID,
		Status:      constants.OrderStatusPending,
		TotalAmount: totalAmount,
		Shipping: models.ShippingAddress{
			FullName:      strings.TrimSpace(input.ShippingAddress.FullName),
			PhoneNumber:   strings.TrimSpace(input.ShippingAddress.PhoneNumber),
			StreetAddress: strings.TrimSpace(input.ShippingAddress.StreetAddress),
			City:          strings.TrimSpace(input.ShippingAddress.City),
			State:         strings.TrimSpace(input.ShippingAddress.State),
			ZipCode:       strings.TrimSpace(input.ShippingAddress.ZipCode),
			Country:       strings.TrimSpace(input.ShippingAddress.Country),
		},
		PaymentMethod:    method,
		PaymentStatus:    constants.PaymentStatusSuccess,
		PaymentReference: result.ReferenceID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, orderItems); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUser(input.UserID)
	})
	if err != nil {
		logger.Errorw("checkout_persist_failed",
			"user_id", input.UserID,
			"order_no", order.OrderNo,
			"payment_reference", result.ReferenceID,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	order.Items = orderItems

	s.enqueueOrderConfirmation(order)

	return order, nil
}

// buildOrderItems 以当前商品价格为快照生成订单项并汇总金额
func (s *CheckoutService) buildOrderItems(cartItems []models.CartItem) ([]models.OrderItem, models.Money, error) {
	ids := make([]uint, 0, len(cartItems))
	for _, item := range cartItems {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, models.Money{}, err
	}
	productByID := make(map[uint]models.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	now := time.Now()
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	total := decimal.Zero
	for _, item := range cartItems {
		product, ok := productByID[item.ProductID]
		if !ok || !product.IsActive {
			return nil, models.Money{}, ErrNotFound
		}
		if item.Quantity <= 0 {
			return nil, models.Money{}, ErrInvalidInput
		}
		lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			TotalPrice:  models.NewMoneyFromDecimal(lineTotal),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		total = total.Add(lineTotal)
	}
	return orderItems, models.NewMoneyFromDecimal(total), nil
}

// enqueueOrderConfirmation 入队订单确认通知，失败只记录日志不影响下单结果
func (s *CheckoutService) enqueueOrderConfirmation(order *models.Order) {
	if s.queueClient == nil || order == nil {
		return
	}
	if err := s.queueClient.EnqueueOrderConfirmation(queue.OrderConfirmationPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
	}); err != nil {
		logger.Warnw("checkout_enqueue_confirmation_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("SP%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
