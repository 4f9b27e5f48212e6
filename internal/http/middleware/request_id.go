// README: X-Request-ID middleware; generates or propagates correlation IDs.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID propagates an incoming X-Request-ID header or generates one,
// exposing it to handlers and echoing it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// RequestIDFrom returns the correlation ID for the current request.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
