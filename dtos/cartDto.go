package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartResponse is the fully computed cart projection returned to clients.
// Totals are recomputed from the items on every read, never stored.
type CartResponse struct {
	ID         string             `json:"id"`
	SessionID  string             `json:"sessionId"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type CartItemResponse struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"productId"`
	ProductName        string          `json:"productName"`
	ProductDescription string          `json:"productDescription"`
	ProductPrice       decimal.Decimal `json:"productPrice"`
	Quantity           int             `json:"quantity"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	AvailableStock     int             `json:"availableStock"`
	AddedAt            time.Time       `json:"addedAt"`
}

type CartSummaryResponse struct {
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Quantity bounds are enforced by the cart service, not binding tags,
// so zero and negative values get the service's error message.
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
