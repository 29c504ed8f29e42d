package services

import (
	"github.com/shopcart/shop-api/dtos"
	"github.com/shopcart/shop-api/models"
	"github.com/shopcart/shop-api/repositories"
)

type CategoryService interface {
	GetAllCategories() ([]dtos.CategoryResponse, error)
	GetCategoryByID(id string) (*dtos.CategoryResponse, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetAllCategories() ([]dtos.CategoryResponse, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]dtos.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, mapCategoryToResponse(&category))
	}
	return responses, nil
}

func (s *categoryService) GetCategoryByID(id string) (*dtos.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("category with id %s not found", id)
	}
	response := mapCategoryToResponse(category)
	return &response, nil
}

func mapCategoryToResponse(category *models.Category) dtos.CategoryResponse {
	return dtos.CategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		ProductCount: len(category.Products),
	}
}
