package http

import (
	"github.com/gin-gonic/gin"

	"bnapp/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// resolves the viewer first.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.Viewer())
	{
		events.POST("/items", h.Create)
		events.GET("/items/:dateKey/:id", h.Detail)
		events.PUT("/items/:dateKey/:id", h.Update)
		events.DELETE("/items/:dateKey/:id", h.Delete)

		events.GET("/days/:date", h.Day)
		events.GET("/days/:date/load", h.Load)
		events.GET("/days/:date/blocks", h.Blocks)
		events.POST("/days/:date/holiday", h.ToggleHoliday)

		events.GET("/range", h.Range)
		events.GET("/tasks", h.Tasks)
		events.GET("/history", h.History)
		events.GET("/suggest", h.Suggest)
		events.GET("/export", h.Export)
		events.POST("/import", h.Import)
	}
}
