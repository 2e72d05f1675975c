package http

import (
	"primering/internal/analysis"
	"primering/pkg/datemath"
	"primering/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    analysis.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for diary analysis. Request dates are
// resolved in the timezone of dates.
func New(l log.Logger, uc analysis.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
