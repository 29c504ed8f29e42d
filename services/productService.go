package services

import (
	"encoding/json"

	"github.com/shopcart/shop-api/dtos"
	"github.com/shopcart/shop-api/models"
	"github.com/shopcart/shop-api/repositories"
	"gorm.io/datatypes"
)

// UncategorizedName is shown when a product has no category link.
const UncategorizedName = "Uncategorized"

type ProductService interface {
	GetAllProducts() ([]dtos.ProductResponse, error)
	GetProductByID(id string) (*dtos.ProductResponse, error)
	CreateProduct(req dtos.CreateProductRequest) (*dtos.ProductResponse, error)
	AddProductImages(id string, urls []string) (*dtos.ProductResponse, error)
}

type productService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) ProductService {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *productService) GetAllProducts() ([]dtos.ProductResponse, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]dtos.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, mapProductToResponse(&product))
	}
	return responses, nil
}

func (s *productService) GetProductByID(id string) (*dtos.ProductResponse, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("product with id %s not found", id)
	}
	response := mapProductToResponse(product)
	return &response, nil
}

func (s *productService) CreateProduct(req dtos.CreateProductRequest) (*dtos.ProductResponse, error) {
	category, err := s.categoryRepo.GetByID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("category with id %s not found", req.CategoryID)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}
	created, err := s.productRepo.Create(product)
	if err != nil {
		return nil, err
	}
	response := mapProductToResponse(created)
	return &response, nil
}

// AddProductImages appends uploaded image URLs to the product's images
// JSON column.
func (s *productService) AddProductImages(id string, urls []string) (*dtos.ProductResponse, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("product with id %s not found", id)
	}

	var images []string
	if len(product.Images) > 0 {
		if err := json.Unmarshal(product.Images, &images); err != nil {
			return nil, err
		}
	}
	images = append(images, urls...)

	encoded, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	product.Images = datatypes.JSON(encoded)

	updated, err := s.productRepo.Update(product)
	if err != nil {
		return nil, err
	}
	response := mapProductToResponse(updated)
	return &response, nil
}

func mapProductToResponse(product *models.Product) dtos.ProductResponse {
	categoryName := UncategorizedName
	if product.Category != nil {
		categoryName = product.Category.Name
	}
	return dtos.ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Stock:        product.Stock,
		CategoryID:   product.CategoryID,
		CategoryName: categoryName,
		Images:       product.Images,
	}
}
