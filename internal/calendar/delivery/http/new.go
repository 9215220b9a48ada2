package http

import (
	"bnapp/internal/calendar"
	"bnapp/pkg/log"
)

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the month view.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
