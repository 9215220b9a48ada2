package middleware

import (
	"github.com/gin-gonic/gin"

	"bnapp/internal/model"
	"bnapp/pkg/response"
)

// Viewer resolves the participant from ViewerHeader, falling back to the
// configured default, and stores the resulting scope in the request context.
// Requests naming an unknown participant are rejected with 401.
func (m Middleware) Viewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(ViewerHeader)
		viewer := m.defaultViewer
		if raw != "" {
			o, ok := model.ParseOwner(raw)
			if !ok || !o.IsParticipant() {
				m.l.Warnf(c.Request.Context(), "middleware.Viewer: rejected viewer %q", raw)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			viewer = o
		}
		if !viewer.IsParticipant() {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := model.Scope{Viewer: viewer}
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

const scopeKey = "scope"

// GetScope returns the scope set by Viewer.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	return sc
}
