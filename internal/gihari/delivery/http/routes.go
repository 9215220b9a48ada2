package http

import (
	"github.com/gin-gonic/gin"

	"bnapp/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints. The rate limit runs after
// Viewer so buckets are per participant.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/gihari", mw.Viewer(), mw.RateLimit())
	{
		g.POST("/command", h.Command)
		g.GET("/summary", h.Summary)
		g.GET("/suggest", h.Suggest)
		g.GET("/free-time", h.FreeTime)
	}
}
