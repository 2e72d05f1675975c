package usecase

import (
	"context"

	"primering/internal/event"
	repo "primering/internal/event/repository"
	"primering/internal/model"
)

// List returns the scope's events overlapping the requested window.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	sc = model.ScopeOrDefault(sc)

	if !input.From.IsZero() && !input.To.IsZero() && input.To.Before(input.From) {
		return event.ListOutput{}, event.ErrInvalidTimeRange
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		UserID:     sc.UserID,
		From:       input.From,
		To:         input.To,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListOutput{}, err
	}
	return event.ListOutput{Events: events}, nil
}
