package http

import (
	"github.com/gin-gonic/gin"

	"bnapp/internal/middleware"
)

// RegisterRoutes maps the weather endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/weather/:date", mw.Viewer(), h.ForDate)
}
