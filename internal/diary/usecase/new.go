package usecase

import (
	"time"

	"primering/internal/diary/repository"
	"primering/pkg/log"
)

// implUseCase is the private implementation of diary.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	location *time.Location
	now      func() time.Time
}

// New creates a new diary UseCase implementation. Entries created without a
// date are dated now in location.
func New(l log.Logger, repo repository.Repository, location *time.Location) *implUseCase {
	if location == nil {
		location = time.Local
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		location: location,
		now:      time.Now,
	}
}
