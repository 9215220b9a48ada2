package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bnapp/pkg/response"
)

// CORS allows the configured origins, or any origin when none are configured.
// Preflights from other origins are refused with 403.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := len(m.allowedOrigins) == 0 || m.allowedOrigins[origin]
		if origin != "" && !allowed && c.Request.Method == http.MethodOptions {
			response.Forbidden(c)
			c.Abort()
			return
		}
		if origin != "" && allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Headers", "Content-Type, "+ViewerHeader+", "+RequestIDHeader)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
