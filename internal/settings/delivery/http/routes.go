package http

import (
	"github.com/gin-gonic/gin"

	"bnapp/internal/middleware"
)

// RegisterRoutes maps the settings endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/settings", mw.Viewer())
	{
		g.GET("", h.Get)
		g.PUT("/city", h.SaveCity)
	}
}
