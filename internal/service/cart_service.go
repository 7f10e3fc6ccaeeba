package service

import (
	"time"

	"github.com/shopora-next/internal/models"
	"github.com/shopora-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ItemID    uint            `json:"item_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	Product   *models.Product `json:"product"`
}

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车
func (s *CartService) ListByUser(userID uint) ([]CartItemDetail, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || !product.IsActive {
			// 商品下架后购物车行直接清理，避免结账时再失败
			_ = s.cartRepo.DeleteByID(userID, item.ID)
			continue
		}

		details = append(details, CartItemDetail{
			ItemID:    item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Product:   product,
		})
	}
	return details, nil
}

// AddItem 加入购物车，同一商品重复加入时数量累加
func (s *CartService) AddItem(input AddCartItemInput) error {
	if input.UserID == 0 {
		return ErrUnauthenticated
	}
	if input.ProductID == 0 {
		return ErrInvalidInput
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrNotFound
	}

	affected, err := s.cartRepo.AddQuantity(input.UserID, input.ProductID, quantity)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.Create(item); err != nil {
		// 并发加购撞上唯一索引时退回到累加
		if repository.IsUniqueViolation(err) {
			_, err = s.cartRepo.AddQuantity(input.UserID, input.ProductID, quantity)
		}
		return err
	}
	return nil
}

// UpdateQuantity 更新购物车项数量，数量小于等于 0 等价于删除
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if itemID == 0 {
		return ErrInvalidInput
	}
	if quantity <= 0 {
		return s.RemoveItem(userID, itemID)
	}
	return s.cartRepo.SetQuantity(userID, itemID, quantity)
}

// RemoveItem 删除购物车项，删除不存在的项视为成功
func (s *CartService) RemoveItem(userID, itemID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if itemID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.DeleteByID(userID, itemID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	return s.cartRepo.ClearByUser(userID)
}

// TotalItems 统计购物车商品总件数
func TotalItems(items []CartItemDetail) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice 统计购物车总金额（单价 × 数量求和）
func TotalPrice(items []CartItemDetail) models.Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}
