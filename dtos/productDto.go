package dtos

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Images       datatypes.JSON  `json:"images"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	CategoryID  string          `json:"categoryId" binding:"required"`
}
