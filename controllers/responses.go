package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/services"
)

func sendErrorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{"message": message})
}

// sendServiceError translates typed service failures to status codes.
// Anything untyped is a store/driver error and maps to 500.
func sendServiceError(ctx *gin.Context, err error) {
	var notFoundErr *services.NotFoundError
	var invalidErr *services.InvalidArgumentError
	var stockErr *services.InsufficientStockError

	switch {
	case errors.As(err, &notFoundErr):
		sendErrorResponse(ctx, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &invalidErr):
		sendErrorResponse(ctx, http.StatusBadRequest, invalidErr.Message)
	case errors.As(err, &stockErr):
		sendErrorResponse(ctx, http.StatusBadRequest, stockErr.Message)
	default:
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
