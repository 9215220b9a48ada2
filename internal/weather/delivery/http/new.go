package http

import (
	"time"

	"bnapp/internal/weather"
	"bnapp/pkg/datemath"
	"bnapp/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    weather.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for weather.
func New(l log.Logger, uc weather.UseCase, dates *datemath.Parser) *handler {
	return &handler{l: l, uc: uc, dates: dates, now: time.Now}
}
