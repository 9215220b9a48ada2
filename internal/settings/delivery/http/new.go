package http

import (
	"bnapp/internal/settings"
	"bnapp/pkg/log"
)

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a new HTTP handler for settings.
func New(l log.Logger, uc settings.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
