package http

import (
	"primering/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps analysis routes onto the /api/v1 group. Both are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("", mw.RateLimit(), mw.Scope())
	{
		a.POST("/analysis", h.Analyze)
		a.POST("/diaries/:id/analysis", h.AnalyzeDiary)
	}
}
