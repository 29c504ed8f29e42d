package repositories

import (
	"errors"
	"time"

	"github.com/shopcart/shop-api/models"
	"gorm.io/gorm"
)

type CartItemRepository interface {
	GetByID(id string) (*models.CartItem, error)
	GetByCartAndProduct(cartID, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) (*models.CartItem, error)
	Update(item *models.CartItem) (*models.CartItem, error)
	DeleteByID(id string) (bool, error)
	DeleteAllByCart(cartID string) (int64, error)
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository {
	return &cartItemRepository{db: db}
}

func (r *cartItemRepository) GetByID(id string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.
		Preload("Product.Category").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) GetByCartAndProduct(cartID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.
		Preload("Product.Category").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) Create(item *models.CartItem) (*models.CartItem, error) {
	// AddedAt is set once here and never rewritten on quantity changes.
	item.AddedAt = time.Now().UTC()
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return r.GetByID(item.ID)
}

func (r *cartItemRepository) Update(item *models.CartItem) (*models.CartItem, error) {
	err := r.db.Model(&models.CartItem{}).
		Where("id = ?", item.ID).
		Update("quantity", item.Quantity).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(item.ID)
}

func (r *cartItemRepository) DeleteByID(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *cartItemRepository) DeleteAllByCart(cartID string) (int64, error) {
	result := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
