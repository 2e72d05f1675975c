package usecase

import (
	"context"
	"strings"

	"primering/internal/event"
	repo "primering/internal/event/repository"
	"primering/internal/model"
)

// Detail returns a single event. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	e, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return event.DetailOutput{}, err
	}
	return event.DetailOutput{Event: e}, nil
}

// Update merges the provided fields into the stored event and re-validates it.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return event.UpdateOutput{}, err
	}

	next := existing
	next.Title = coalesce(strings.TrimSpace(input.Title), existing.Title)
	next.CategoryID = coalesce(input.CategoryID, existing.CategoryID)
	next.Color = coalesce(input.Color, existing.Color)
	if input.Description != nil {
		next.Description = *input.Description
	}
	if input.StartDate != nil {
		next.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		next.EndDate = *input.EndDate
	}
	if input.AllDay != nil {
		next.AllDay = *input.AllDay
	}
	if input.Recurrence != nil {
		next.Recurrence = input.Recurrence
	}
	if input.Tags != nil {
		next.Tags = input.Tags
	}
	if input.Priority != "" {
		next.Priority = input.Priority
	}
	if err := validate(next); err != nil {
		return event.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{Event: next})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return event.UpdateOutput{}, err
	}
	return event.UpdateOutput{Event: updated}, nil
}

// Delete removes an event and its calendar mirror, if any.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteEvent(ctx, repo.DeleteEventOptions{ID: id, UserID: existing.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}

	uc.tryRemoveFromCalendar(ctx, existing)
	return nil
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	sc = model.ScopeOrDefault(sc)

	e, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneEvent: %v", err)
		return model.Event{}, err
	}
	if e.ID == "" {
		return model.Event{}, event.ErrEventNotFound
	}
	return e, nil
}
