package telegram

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook. Telegram authenticates with the secret
// header, so no viewer middleware runs here.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
