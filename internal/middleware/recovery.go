package middleware

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"date-arithmetic-service/pkg/response"
)

// Recovery turns panics into a 500 JSON answer and keeps the process alive.
// It also marks the context so 500 bodies hide fault details when required.
func (m Middleware) Recovery() gin.HandlerFunc {
	// Stack traces go through our logger, not gin's default writer.
	recovery := gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: %v\n%s", rec, debug.Stack())
		if !c.Writer.Written() {
			response.InternalError(c, fmt.Errorf("%v", rec))
		}
		c.Abort()
	})

	return func(c *gin.Context) {
		if m.redactErrors {
			c.Set(response.KeyRedactErrors, true)
		}
		recovery(c)
	}
}
