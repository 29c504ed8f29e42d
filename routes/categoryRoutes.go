package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/controllers"
)

func CategoryRoutes(server *gin.Engine, categoryController *controllers.CategoryController) {
	server.GET("/categories", categoryController.GetCategories)
	server.GET("/categories/:id", categoryController.GetCategory)
}
