package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "github.com/jsamuelsen/exercises-service/internal/app/context"
)

// RequestScope attaches a fresh request-scoped memo to the request context,
// so work repeated within one request (reading the same file twice, say)
// runs once.
func RequestScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := appctx.New(c.Request.Context())
		c.Request = c.Request.WithContext(appctx.WithContext(c.Request.Context(), rc))
		c.Next()
	}
}
