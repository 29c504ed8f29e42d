package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/services"
)

type CategoryController struct {
	categoryService services.CategoryService
}

func NewCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.categoryService.GetAllCategories()
	if err != nil {
		log.Println("Failed to fetch categories:", err)
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func (c *CategoryController) GetCategory(ctx *gin.Context) {
	category, err := c.categoryService.GetCategoryByID(ctx.Param("id"))
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}
