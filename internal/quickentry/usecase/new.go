package usecase

import (
	"time"

	"primering/internal/category"
	"primering/internal/event"
	"primering/internal/quickentry"
	"primering/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	parser     *quickentry.Parser
	categories category.UseCase
	events     event.UseCase
	location   *time.Location
	now        func() time.Time
}

// New creates the quick-entry usecase. Requests without a reference time are
// resolved against the current time in location.
func New(
	l log.Logger,
	parser *quickentry.Parser,
	categories category.UseCase,
	events event.UseCase,
	location *time.Location,
) *implUseCase {
	if location == nil {
		location = time.Local
	}
	return &implUseCase{
		l:          l,
		parser:     parser,
		categories: categories,
		events:     events,
		location:   location,
		now:        time.Now,
	}
}
