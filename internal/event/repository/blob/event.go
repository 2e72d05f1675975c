package blob

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"primering/internal/event/repository"
	"primering/internal/model"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	items, _, err := r.col.All(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}

	out := make([]model.Event, 0, len(items))
	for _, e := range items {
		if opt.UserID != "" && e.UserID != opt.UserID {
			continue
		}
		if opt.CategoryID != "" && e.CategoryID != opt.CategoryID {
			continue
		}
		if !opt.From.IsZero() && e.EndDate.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && e.StartDate.After(opt.To) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

func (r *implRepository) GetOneEvent(ctx context.Context, opt repository.GetOneEventOptions) (model.Event, error) {
	items, _, err := r.col.All(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repository.ErrFailedToGet
	}

	for _, e := range items {
		if e.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && e.UserID != opt.UserID {
			continue
		}
		return e, nil
	}
	return model.Event{}, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	now := r.now()
	created := opt.Event
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now

	err := r.col.Update(ctx, func(items []model.Event, _ bool) ([]model.Event, error) {
		return append(items, created), nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repository.ErrFailedToInsert
	}
	return created, nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) (model.Event, error) {
	var updated model.Event
	err := r.col.Update(ctx, func(items []model.Event, _ bool) ([]model.Event, error) {
		for i := range items {
			if items[i].ID != opt.Event.ID {
				continue
			}
			next := opt.Event
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
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return model.Event{}, repository.ErrFailedToUpdate
	}
	return updated, nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, opt repository.DeleteEventOptions) error {
	err := r.col.Update(ctx, func(items []model.Event, _ bool) ([]model.Event, error) {
		out := items[:0]
		for _, e := range items {
			if e.ID == opt.ID && (opt.UserID == "" || e.UserID == opt.UserID) {
				continue
			}
			out = append(out, e)
		}
		return out, nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
