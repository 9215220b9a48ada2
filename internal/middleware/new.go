package middleware

import (
	"bnapp/internal/model"
	"bnapp/pkg/log"
)

// ViewerHeader names the participant making the request.
const ViewerHeader = "X-BNAPP-User"

// Config holds the knobs of the HTTP middleware chain.
type Config struct {
	DefaultViewer   model.Owner
	RateLimitPerMin int
	AllowedOrigins  []string
}

type Middleware struct {
	l              log.Logger
	defaultViewer  model.Owner
	limiter        *rateLimiter
	allowedOrigins map[string]bool
}

func New(l log.Logger, cfg Config) Middleware {
	origins := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = true
	}
	return Middleware{
		l:              l,
		defaultViewer:  cfg.DefaultViewer,
		limiter:        newRateLimiter(cfg.RateLimitPerMin),
		allowedOrigins: origins,
	}
}
