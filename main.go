package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/controllers"
	"github.com/shopcart/shop-api/initializers"
	"github.com/shopcart/shop-api/repositories"
	"github.com/shopcart/shop-api/routes"
	"github.com/shopcart/shop-api/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cartRepo := repositories.NewCartRepository(initializers.DB)
	cartItemRepo := repositories.NewCartItemRepository(initializers.DB)
	productRepo := repositories.NewProductRepository(initializers.DB)
	categoryRepo := repositories.NewCategoryRepository(initializers.DB)

	cartService := services.NewCartService(cartRepo, cartItemRepo, productRepo)
	productService := services.NewProductService(productRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	cartController := controllers.NewCartController(cartService)
	productController := controllers.NewProductController(productService)
	categoryController := controllers.NewCategoryController(categoryService)

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, productController)
	routes.CategoryRoutes(server, categoryController)
	routes.CartRoutes(server, cartController)

	server.Run()
}
