package http

import (
	"bnapp/internal/shopping"
	"bnapp/pkg/log"
)

type handler struct {
	l  log.Logger
	uc shopping.UseCase
}

// New creates a new HTTP handler for shopping lists.
func New(l log.Logger, uc shopping.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
