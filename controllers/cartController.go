package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/dtos"
	"github.com/shopcart/shop-api/services"
)

type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	cart, err := c.cartService.GetOrCreateCart(sessionID)
	if err != nil {
		log.Println("Failed to load cart:", err)
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (c *CartController) GetCartSummary(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	summary, err := c.cartService.GetCartSummary(sessionID)
	if err != nil {
		log.Println("Failed to load cart summary:", err)
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

func (c *CartController) AddItem(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	var req dtos.AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := c.cartService.AddItemToCart(sessionID, req)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (c *CartController) UpdateItemQuantity(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")
	cartItemID := ctx.Param("cartItemId")

	var req dtos.UpdateCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := c.cartService.UpdateCartItemQuantity(sessionID, cartItemID, req.Quantity)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")
	cartItemID := ctx.Param("cartItemId")

	cart, err := c.cartService.RemoveItemFromCart(sessionID, cartItemID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	if _, err := c.cartService.ClearCart(sessionID); err != nil {
		log.Println("Failed to clear cart:", err)
		sendServiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
