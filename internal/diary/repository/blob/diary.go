package blob

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"primering/internal/diary/repository"
	"primering/internal/model"
)

func (r *implRepository) ListDiaries(ctx context.Context, opt repository.ListDiariesOptions) ([]model.Diary, error) {
	items, _, err := r.col.All(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDiaries"), err)
		return nil, repository.ErrFailedToList
	}

	out := make([]model.Diary, 0, len(items))
	for _, d := range items {
		if !owned(d, opt.UserID) {
			continue
		}
		if !opt.From.IsZero() && d.Date.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && d.Date.After(opt.To) {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *implRepository) GetOneDiary(ctx context.Context, opt repository.GetOneDiaryOptions) (model.Diary, error) {
	items, _, err := r.col.All(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDiary"), err)
		return model.Diary{}, repository.ErrFailedToGet
	}

	for _, d := range items {
		if d.ID == opt.ID && owned(d, opt.UserID) {
			return d, nil
		}
	}
	return model.Diary{}, nil
}

func (r *implRepository) CreateDiary(ctx context.Context, opt repository.CreateDiaryOptions) (model.Diary, error) {
	now := r.now()
	created := opt.Diary
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now

	err := r.col.Update(ctx, func(items []model.Diary, _ bool) ([]model.Diary, error) {
		return append(items, created), nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDiary"), err)
		return model.Diary{}, repository.ErrFailedToInsert
	}
	return created, nil
}

func (r *implRepository) UpdateDiary(ctx context.Context, opt repository.UpdateDiaryOptions) (model.Diary, error) {
	var updated model.Diary
	err := r.col.Update(ctx, func(items []model.Diary, _ bool) ([]model.Diary, error) {
		for i := range items {
			if items[i].ID != opt.Diary.ID {
				continue
			}
			next := opt.Diary
			next.UserID = items[i].UserID
			next.CreatedAt = items[i].CreatedAt
			next.UpdatedAt = r.now()
			items[i] = next
			updated = next
			return items, nil
		}
		return nil, repository.ErrNotFound
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateDiary"), err)
		return model.Diary{}, repository.ErrFailedToUpdate
	}
	return updated, nil
}

func (r *implRepository) DeleteDiary(ctx context.Context, opt repository.DeleteDiaryOptions) error {
	err := r.col.Update(ctx, func(items []model.Diary, _ bool) ([]model.Diary, error) {
		out := items[:0]
		for _, d := range items {
			if d.ID == opt.ID && owned(d, opt.UserID) {
				continue
			}
			out = append(out, d)
		}
		return out, nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDiary"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// owned matches entries of userID. Entries written before users existed
// carry no UserID and belong to the default user.
func owned(d model.Diary, userID string) bool {
	if userID == "" {
		return true
	}
	if d.UserID == "" {
		return userID == model.DefaultUserID
	}
	return d.UserID == userID
}
