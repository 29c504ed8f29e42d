package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Shop API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

PRODUCT
- GET "/products" - Get all products
- GET "/products/:id" - Get product by ID
- POST "/products" - Create new product (admin)
- POST "/products/:id/images" - Add product images (admin)

CATEGORY
- GET "/categories" - Get all categories
- GET "/categories/:id" - Get category by ID

CART
- GET "/carts/:sessionId" - Get (or create) the session's cart
- GET "/carts/:sessionId/summary" - Get cart totals
- POST "/carts/:sessionId/items" - Add an item to the cart
- PUT "/carts/:sessionId/items/:cartItemId" - Update item quantity
- DELETE "/carts/:sessionId/items/:cartItemId" - Remove an item
- DELETE "/carts/:sessionId" - Clear the cart`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
