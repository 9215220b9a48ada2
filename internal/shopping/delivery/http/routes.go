package http

import (
	"github.com/gin-gonic/gin"

	"bnapp/internal/middleware"
)

// RegisterRoutes maps the shopping endpoints. Lists are shared by both participants.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	lists := rg.Group("/shopping", mw.Viewer())
	{
		lists.GET("/:list", h.List)
		lists.POST("/:list", h.Add)
		lists.POST("/:list/:id/toggle", h.Toggle)
		lists.DELETE("/:list/:id", h.Delete)
	}
}
