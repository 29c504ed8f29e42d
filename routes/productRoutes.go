package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/controllers"
	"github.com/shopcart/shop-api/middlewares"
)

func ProductRoutes(server *gin.Engine, productController *controllers.ProductController) {
	server.GET("/products", productController.GetProducts)
	server.GET("/products/:id", productController.GetProduct)
	server.POST("/products", middlewares.RequireAdmin(), productController.CreateProduct)
	server.POST("/products/:id/images", middlewares.RequireAdmin(), productController.UploadProductImages)
}
