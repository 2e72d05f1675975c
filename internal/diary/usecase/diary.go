package usecase

import (
	"context"
	"strings"

	"primering/internal/diary"
	repo "primering/internal/diary/repository"
	"primering/internal/model"
)

// Create stores a new diary entry.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input diary.CreateInput) (diary.CreateOutput, error) {
	sc = model.ScopeOrDefault(sc)

	d := model.Diary{
		Date:    input.Date,
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
		Mood:    input.Mood,
		Weather: input.Weather,
		UserID:  sc.UserID,
	}
	if d.Date.IsZero() {
		d.Date = uc.now().In(uc.location)
	}
	if d.Mood == "" {
		d.Mood = model.MoodNeutral
	}
	if err := validate(d); err != nil {
		return diary.CreateOutput{}, err
	}

	created, err := uc.repo.CreateDiary(ctx, repo.CreateDiaryOptions{Diary: d})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateDiary: %v", err)
		return diary.CreateOutput{}, err
	}
	return diary.CreateOutput{Diary: created}, nil
}

// List returns the scope's entries within the window, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input diary.ListInput) (diary.ListOutput, error) {
	sc = model.ScopeOrDefault(sc)

	if !input.From.IsZero() && !input.To.IsZero() && input.To.Before(input.From) {
		return diary.ListOutput{}, diary.ErrInvalidDateRange
	}

	diaries, err := uc.repo.ListDiaries(ctx, repo.ListDiariesOptions{
		UserID: sc.UserID,
		From:   input.From,
		To:     input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListDiaries: %v", err)
		return diary.ListOutput{}, err
	}
	return diary.ListOutput{Diaries: diaries}, nil
}

// Detail returns a single entry. Returns ErrDiaryNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (diary.DetailOutput, error) {
	d, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return diary.DetailOutput{}, err
	}
	return diary.DetailOutput{Diary: d}, nil
}

// Update merges the provided fields into the stored entry.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input diary.UpdateInput) (diary.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return diary.UpdateOutput{}, err
	}

	next := existing
	next.Title = coalesce(strings.TrimSpace(input.Title), existing.Title)
	next.Content = coalesce(input.Content, existing.Content)
	if input.Date != nil {
		next.Date = *input.Date
	}
	if input.Mood != "" {
		next.Mood = input.Mood
	}
	if input.Weather != nil {
		next.Weather = *input.Weather
	}
	if err := validate(next); err != nil {
		return diary.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateDiary(ctx, repo.UpdateDiaryOptions{Diary: next})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateDiary: %v", err)
		return diary.UpdateOutput{}, err
	}
	return diary.UpdateOutput{Diary: updated}, nil
}

// Delete removes an entry.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteDiary(ctx, repo.DeleteDiaryOptions{ID: existing.ID, UserID: model.ScopeOrDefault(sc).UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteDiary: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Diary, error) {
	sc = model.ScopeOrDefault(sc)

	d, err := uc.repo.GetOneDiary(ctx, repo.GetOneDiaryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneDiary: %v", err)
		return model.Diary{}, err
	}
	if d.ID == "" {
		return model.Diary{}, diary.ErrDiaryNotFound
	}
	return d, nil
}

func validate(d model.Diary) error {
	if d.Title == "" {
		return diary.ErrTitleRequired
	}
	if strings.TrimSpace(d.Content) == "" {
		return diary.ErrContentRequired
	}
	if !d.Mood.IsValid() {
		return diary.ErrInvalidMood
	}
	return nil
}

func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
