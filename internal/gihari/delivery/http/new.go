package http

import (
	"bnapp/internal/gihari"
	"bnapp/pkg/log"
)

type handler struct {
	l  log.Logger
	uc gihari.UseCase
}

// New creates a new HTTP handler for the assistant.
func New(l log.Logger, uc gihari.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
