package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		took := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, took)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, took)
		default:
			m.l.Infof(ctx, "%s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, took)
		}
	}
}
