package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	ID          string          `gorm:"size:36;primaryKey" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CategoryID  string          `gorm:"size:36;index" json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"-"`
	Images      datatypes.JSON  `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
