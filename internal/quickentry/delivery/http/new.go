package http

import (
	"primering/internal/quickentry"
	"primering/pkg/log"
)

type handler struct {
	l  log.Logger
	uc quickentry.UseCase
}

// New creates a new HTTP handler for quick entry.
func New(l log.Logger, uc quickentry.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
