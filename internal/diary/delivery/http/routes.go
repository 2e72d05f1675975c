package http

import (
	"primering/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	diaries := rg.Group("", mw.Scope())
	{
		diaries.GET("", h.List)
		diaries.POST("", h.Create)
		diaries.GET("/:id", h.Detail)
		diaries.PUT("/:id", h.Update)
		diaries.DELETE("/:id", h.Delete)
	}
}
