package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"date-arithmetic-service/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen caps inbound ids that are echoed back and logged.
const maxRequestIDLen = 128

// RequestID propagates the inbound X-Request-ID or generates a new one.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
