package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"primering/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags each request with an id, reusing the caller's when present.
// The id is echoed in the response and attached to the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey{}, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
