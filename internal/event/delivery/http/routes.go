package http

import (
	"primering/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("", mw.Scope())
	{
		events.GET("", h.List)
		events.POST("", h.Create)
		events.GET("/:id", h.Detail)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
