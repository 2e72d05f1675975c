package blob

import (
	"context"

	"github.com/google/uuid"

	"primering/internal/category/repository"
	"primering/internal/model"
)

func (r *implRepository) ListCategories(ctx context.Context, opt repository.ListCategoriesOptions) ([]model.Category, error) {
	all, err := r.all(ctx, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repository.ErrFailedToList
	}

	out := make([]model.Category, 0, len(all))
	for _, c := range all {
		if opt.UserID == "" || c.UserID == opt.UserID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *implRepository) GetOneCategory(ctx context.Context, opt repository.GetOneCategoryOptions) (model.Category, error) {
	all, err := r.all(ctx, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repository.ErrFailedToGet
	}

	for _, c := range all {
		if opt.ID != "" && c.ID != opt.ID {
			continue
		}
		if opt.Name != "" && c.Name != opt.Name {
			continue
		}
		if opt.UserID != "" && c.UserID != opt.UserID {
			continue
		}
		return c, nil
	}
	return model.Category{}, nil
}

func (r *implRepository) CreateCategory(ctx context.Context, opt repository.CreateCategoryOptions) (model.Category, error) {
	created := model.Category{
		ID:     "cat-" + uuid.NewString(),
		Name:   opt.Name,
		Color:  opt.Color,
		Icon:   opt.Icon,
		UserID: opt.UserID,
	}

	err := r.col.Update(ctx, func(items []model.Category, exists bool) ([]model.Category, error) {
		if !exists {
			items = model.DefaultCategories(ownerOf(opt.UserID))
		}
		created.Order = len(items)
		return append(items, created), nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repository.ErrFailedToInsert
	}
	return created, nil
}

func (r *implRepository) UpdateCategory(ctx context.Context, opt repository.UpdateCategoryOptions) (model.Category, error) {
	var updated model.Category
	err := r.col.Update(ctx, func(items []model.Category, exists bool) ([]model.Category, error) {
		if !exists {
			items = model.DefaultCategories(ownerOf(opt.UserID))
		}
		for i := range items {
			if items[i].ID != opt.ID {
				continue
			}
			items[i].Name = opt.Name
			items[i].Color = opt.Color
			items[i].Icon = opt.Icon
			items[i].Order = opt.Order
			updated = items[i]
			return items, nil
		}
		return nil, repository.ErrNotFound
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, repository.ErrFailedToUpdate
	}
	return updated, nil
}

func (r *implRepository) DeleteCategory(ctx context.Context, opt repository.DeleteCategoryOptions) error {
	err := r.col.Update(ctx, func(items []model.Category, exists bool) ([]model.Category, error) {
		if !exists {
			items = model.DefaultCategories(ownerOf(opt.UserID))
		}
		out := items[:0]
		for _, c := range items {
			if c.ID != opt.ID {
				out = append(out, c)
			}
		}
		return out, nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// all returns the stored categories, or the default set before the first write.
func (r *implRepository) all(ctx context.Context, userID string) ([]model.Category, error) {
	items, exists, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return model.DefaultCategories(ownerOf(userID)), nil
	}
	return items, nil
}

func ownerOf(userID string) string {
	if userID == "" {
		return model.DefaultUserID
	}
	return userID
}
