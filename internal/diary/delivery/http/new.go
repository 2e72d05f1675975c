package http

import (
	"primering/internal/diary"
	"primering/pkg/datemath"
	"primering/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    diary.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the diary domain. Query days are
// resolved in the timezone of dates.
func New(l log.Logger, uc diary.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
