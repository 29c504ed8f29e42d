package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	ID        string     `gorm:"size:36;primaryKey" json:"id"`
	SessionID string     `gorm:"size:100;not null;uniqueIndex" json:"sessionId"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem holds one product line in a cart. A cart has at most one
// item per product, enforced by the (cart_id, product_id) unique index.
type CartItem struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	CartID    string    `gorm:"size:36;not null;index:idx_cart_product,unique" json:"cartId"`
	ProductID string    `gorm:"size:36;not null;index:idx_cart_product,unique" json:"productId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"-"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
