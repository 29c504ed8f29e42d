package middlewares

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates catalog mutation endpoints behind a shared secret.
// The service has no user accounts, so the header is compared against
// ADMIN_API_KEY from the environment.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		adminKey := os.Getenv("ADMIN_API_KEY")
		if adminKey == "" || ctx.GetHeader("X-Admin-Key") != adminKey {
			ctx.JSON(http.StatusForbidden, gin.H{"message": "You are not allowed to perform this action."})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
