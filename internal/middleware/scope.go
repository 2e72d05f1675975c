package middleware

import (
	"github.com/gin-gonic/gin"

	"primering/internal/model"
)

const (
	HeaderUserID = "X-User-ID"
	scopeKey     = "primering.scope"
)

// Scope resolves the acting user from the X-User-ID header, falling back to
// the configured default user.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			userID = m.defaultUserID
		}
		c.Set(scopeKey, model.ScopeOrDefault(model.Scope{UserID: userID}))
		c.Next()
	}
}

// GetScope returns the scope set by Scope, or the default scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.ScopeOrDefault(model.Scope{})
}
