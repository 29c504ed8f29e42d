package services

import (
	"github.com/shopcart/shop-api/dtos"
	"github.com/shopcart/shop-api/models"
	"github.com/shopcart/shop-api/repositories"
	"github.com/shopspring/decimal"
)

// CartService owns all cart mutation and view construction. Every
// operation resolves the session to its cart and returns a freshly
// reloaded projection.
//
// Stock is a read-time ceiling only: quantities are validated against
// the product's current stock before each write, but stock itself is
// never decremented and the check-then-write sequence is not atomic
// under concurrent requests for the same session.
type CartService interface {
	GetOrCreateCart(sessionID string) (*dtos.CartResponse, error)
	AddItemToCart(sessionID string, req dtos.AddToCartRequest) (*dtos.CartResponse, error)
	UpdateCartItemQuantity(sessionID, cartItemID string, quantity int) (*dtos.CartResponse, error)
	RemoveItemFromCart(sessionID, cartItemID string) (*dtos.CartResponse, error)
	ClearCart(sessionID string) (bool, error)
	GetCartSummary(sessionID string) (*dtos.CartSummaryResponse, error)
}

type cartService struct {
	cartRepo     repositories.CartRepository
	cartItemRepo repositories.CartItemRepository
	productRepo  repositories.ProductRepository
}

func NewCartService(
	cartRepo repositories.CartRepository,
	cartItemRepo repositories.CartItemRepository,
	productRepo repositories.ProductRepository,
) CartService {
	return &cartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

func (s *cartService) GetOrCreateCart(sessionID string) (*dtos.CartResponse, error) {
	cart, err := s.resolveOrCreateCart(sessionID)
	if err != nil {
		return nil, err
	}
	return mapCartToResponse(cart), nil
}

func (s *cartService) AddItemToCart(sessionID string, req dtos.AddToCartRequest) (*dtos.CartResponse, error) {
	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("product with id %s not found", req.ProductID)
	}

	if req.Quantity <= 0 {
		return nil, invalidArgument("quantity must be greater than zero")
	}

	if req.Quantity > product.Stock {
		return nil, insufficientStock(product.Stock,
			"Insufficient stock. Only %d items available.", product.Stock)
	}

	cart, err := s.resolveOrCreateCart(sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartItemRepo.GetByCartAndProduct(cart.ID, req.ProductID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		newQuantity := existing.Quantity + req.Quantity
		if newQuantity > product.Stock {
			return nil, insufficientStock(product.Stock,
				"Cannot add %d more. Total would be %d, but only %d available.",
				req.Quantity, newQuantity, product.Stock)
		}
		existing.Quantity = newQuantity
		if _, err := s.cartItemRepo.Update(existing); err != nil {
			return nil, err
		}
	} else {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if _, err := s.cartItemRepo.Create(item); err != nil {
			return nil, err
		}
	}

	return s.touchAndReload(cart, sessionID)
}

func (s *cartService) UpdateCartItemQuantity(sessionID, cartItemID string, quantity int) (*dtos.CartResponse, error) {
	if quantity <= 0 {
		return nil, invalidArgument("quantity must be greater than zero")
	}

	cart, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, notFound("cart not found")
	}

	item, err := s.cartItemRepo.GetByID(cartItemID)
	if err != nil {
		return nil, err
	}
	// An id belonging to another session's cart is treated as missing.
	if item == nil || item.CartID != cart.ID {
		return nil, notFound("cart item not found")
	}

	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("product not found")
	}

	if quantity > product.Stock {
		return nil, insufficientStock(product.Stock,
			"Insufficient stock. Only %d items available.", product.Stock)
	}

	item.Quantity = quantity
	if _, err := s.cartItemRepo.Update(item); err != nil {
		return nil, err
	}

	return s.touchAndReload(cart, sessionID)
}

func (s *cartService) RemoveItemFromCart(sessionID, cartItemID string) (*dtos.CartResponse, error) {
	cart, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, notFound("cart not found")
	}

	item, err := s.cartItemRepo.GetByID(cartItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CartID != cart.ID {
		return nil, notFound("cart item not found")
	}

	if _, err := s.cartItemRepo.DeleteByID(cartItemID); err != nil {
		return nil, err
	}

	return s.touchAndReload(cart, sessionID)
}

func (s *cartService) ClearCart(sessionID string) (bool, error) {
	cart, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		return false, err
	}
	if cart == nil {
		return false, nil
	}

	if _, err := s.cartItemRepo.DeleteAllByCart(cart.ID); err != nil {
		return false, err
	}
	if _, err := s.cartRepo.Update(cart); err != nil {
		return false, err
	}
	return true, nil
}

func (s *cartService) GetCartSummary(sessionID string) (*dtos.CartSummaryResponse, error) {
	cart, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return &dtos.CartSummaryResponse{TotalItems: 0, TotalPrice: decimal.Zero}, nil
	}

	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range cart.Items {
		totalItems += item.Quantity
		if item.Product != nil {
			totalPrice = totalPrice.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	return &dtos.CartSummaryResponse{TotalItems: totalItems, TotalPrice: totalPrice}, nil
}

func (s *cartService) resolveOrCreateCart(sessionID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	return s.cartRepo.Create(&models.Cart{SessionID: sessionID})
}

// touchAndReload refreshes the cart's UpdatedAt after an item mutation
// and returns the reloaded projection.
func (s *cartService) touchAndReload(cart *models.Cart, sessionID string) (*dtos.CartResponse, error) {
	if _, err := s.cartRepo.Update(cart); err != nil {
		return nil, err
	}
	reloaded, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return mapCartToResponse(reloaded), nil
}

func mapCartToResponse(cart *models.Cart) *dtos.CartResponse {
	items := make([]dtos.CartItemResponse, 0, len(cart.Items))
	totalItems := 0
	totalPrice := decimal.Zero

	for _, item := range cart.Items {
		view := dtos.CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
			Subtotal:  decimal.Zero,
		}
		if item.Product != nil {
			view.ProductName = item.Product.Name
			view.ProductDescription = item.Product.Description
			view.ProductPrice = item.Product.Price
			view.AvailableStock = item.Product.Stock
			view.Subtotal = item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		totalItems += view.Quantity
		totalPrice = totalPrice.Add(view.Subtotal)
		items = append(items, view)
	}

	return &dtos.CartResponse{
		ID:         cart.ID,
		SessionID:  cart.SessionID,
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
		CreatedAt:  cart.CreatedAt,
		UpdatedAt:  cart.UpdatedAt,
	}
}
