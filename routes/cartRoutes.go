package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/controllers"
)

func CartRoutes(server *gin.Engine, cartController *controllers.CartController) {
	carts := server.Group("/carts")
	{
		carts.GET("/:sessionId", cartController.GetCart)
		carts.GET("/:sessionId/summary", cartController.GetCartSummary)
		carts.POST("/:sessionId/items", cartController.AddItem)
		carts.PUT("/:sessionId/items/:cartItemId", cartController.UpdateItemQuantity)
		carts.DELETE("/:sessionId/items/:cartItemId", cartController.RemoveItem)
		carts.DELETE("/:sessionId", cartController.ClearCart)
	}
}
