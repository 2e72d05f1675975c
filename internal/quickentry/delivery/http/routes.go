package http

import (
	"primering/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps quick-entry routes. Both are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	qe := rg.Group("", mw.RateLimit(), mw.Scope())
	{
		qe.POST("/preview", h.Preview)
		qe.POST("/commit", h.Commit)
	}
}
