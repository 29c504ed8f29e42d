package repositories

import (
	"errors"
	"time"

	"github.com/shopcart/shop-api/models"
	"gorm.io/gorm"
)

// CartRepository persists carts. Reads return the cart rehydrated with
// items, their products and product categories. A missing cart is
// reported as (nil, nil) so callers keep a plain nil check.
type CartRepository interface {
	GetBySessionID(sessionID string) (*models.Cart, error)
	GetByID(id string) (*models.Cart, error)
	Create(cart *models.Cart) (*models.Cart, error)
	Update(cart *models.Cart) (*models.Cart, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetBySessionID(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items.Product.Category").
		Where("session_id = ?", sessionID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items.Product.Category").
		Where("id = ?", id).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Create(cart *models.Cart) (*models.Cart, error) {
	now := time.Now().UTC()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if err := r.db.Create(cart).Error; err != nil {
		return nil, err
	}
	return r.GetByID(cart.ID)
}

// Update always refreshes UpdatedAt, even when no cart column changed.
// Item mutations rely on this to mark the cart as last touched.
func (r *cartRepository) Update(cart *models.Cart) (*models.Cart, error) {
	cart.UpdatedAt = time.Now().UTC()
	err := r.db.Model(&models.Cart{}).
		Where("id = ?", cart.ID).
		Update("updated_at", cart.UpdatedAt).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(cart.ID)
}
