package usecase

import (
	"context"
	"strings"

	"primering/internal/event"
	repo "primering/internal/event/repository"
	"primering/internal/model"
)

// Create validates and stores a new event, then mirrors it to Google Calendar when configured.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	sc = model.ScopeOrDefault(sc)

	e := model.Event{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		AllDay:      input.AllDay,
		Recurrence:  input.Recurrence,
		CategoryID:  input.CategoryID,
		Tags:        input.Tags,
		Color:       input.Color,
		Priority:    input.Priority,
		Metadata:    input.Metadata,
		UserID:      sc.UserID,
	}
	if e.Priority == "" {
		e.Priority = model.PriorityMedium
	}
	if e.CategoryID == "" {
		e.CategoryID = model.DefaultCategoryID
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if err := validate(e); err != nil {
		return event.CreateOutput{}, err
	}

	created, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{Event: e})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Create: created event %q id=%s", created.Title, created.ID)

	link := uc.tryMirrorToCalendar(ctx, &created)
	return event.CreateOutput{Event: created, CalendarLink: link}, nil
}
