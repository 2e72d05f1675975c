package usecase

import (
	"primering/internal/event/repository"
	"primering/pkg/gcalendar"
	"primering/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	calendar   gcalendar.Calendar
	calendarID string
	timezone   string
}

// New creates a new event UseCase. calendar may be nil, which disables mirroring.
func New(
	l log.Logger,
	repo repository.Repository,
	calendar gcalendar.Calendar,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
