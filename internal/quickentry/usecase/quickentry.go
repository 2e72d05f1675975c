package usecase

import (
	"context"
	"strings"
	"time"

	"primering/internal/event"
	"primering/internal/model"
	"primering/internal/quickentry"
)

// commitDuration is the length of an event created from quick entry.
const commitDuration = time.Hour

// Preview parses input without side effects. Blank input and input without a
// date both report Found == false.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input quickentry.PreviewInput) (quickentry.PreviewOutput, error) {
	cats := uc.listCategories(ctx, sc)

	draft, ok := uc.parser.Parse(input.Input, cats, uc.reference(input.Now))
	return quickentry.PreviewOutput{Draft: draft, Found: ok}, nil
}

// Commit parses input and stores the draft as a one-hour event.
func (uc *implUseCase) Commit(ctx context.Context, sc model.Scope, input quickentry.CommitInput) (quickentry.CommitOutput, error) {
	sc = model.ScopeOrDefault(sc)

	if strings.TrimSpace(input.Input) == "" {
		return quickentry.CommitOutput{}, quickentry.ErrEmptyInput
	}

	cats := uc.listCategories(ctx, sc)
	draft, ok := uc.parser.Parse(input.Input, cats, uc.reference(input.Now))
	if !ok {
		return quickentry.CommitOutput{}, quickentry.ErrNoDateFound
	}

	categoryID := draft.CategoryID
	if categoryID == "" {
		categoryID = model.DefaultCategoryID
	}

	out, err := uc.events.Create(ctx, sc, event.CreateInput{
		Title:      draft.Title,
		StartDate:  draft.Date,
		EndDate:    draft.Date.Add(commitDuration),
		AllDay:     false,
		CategoryID: categoryID,
		Tags:       []string{},
		Priority:   model.PriorityMedium,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Commit events.Create: %v", err)
		return quickentry.CommitOutput{}, quickentry.ErrCommitFailed
	}

	uc.l.Infof(ctx, "uc.Commit: %q -> event %s at %s", input.Input, out.Event.ID, draft.Date.Format(time.RFC3339))
	return quickentry.CommitOutput{Draft: draft, Event: out.Event}, nil
}

// listCategories returns the scope's categories. A failing store degrades to
// no categories so parsing still works.
func (uc *implUseCase) listCategories(ctx context.Context, sc model.Scope) []model.Category {
	out, err := uc.categories.List(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "uc.listCategories: %v", err)
		return nil
	}
	return out.Categories
}

func (uc *implUseCase) reference(now time.Time) time.Time {
	if now.IsZero() {
		return uc.now().In(uc.location)
	}
	return now
}
