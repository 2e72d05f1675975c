package usecase

import (
	"context"
	"strings"

	"primering/internal/category"
	repo "primering/internal/category/repository"
	"primering/internal/model"
)

// List returns the scope's categories in display order.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (category.ListOutput, error) {
	sc = model.ScopeOrDefault(sc)

	cats, err := uc.repo.ListCategories(ctx, repo.ListCategoriesOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCategories: %v", err)
		return category.ListOutput{}, err
	}
	return category.ListOutput{Categories: cats}, nil
}

// Create appends a category after checking the name is set and unused.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input category.CreateInput) (category.CreateOutput, error) {
	sc = model.ScopeOrDefault(sc)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return category.CreateOutput{}, category.ErrNameRequired
	}

	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: name, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCategory: %v", err)
		return category.CreateOutput{}, err
	}
	if existing.ID != "" {
		return category.CreateOutput{}, category.ErrDuplicateName
	}

	created, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		Name:   name,
		Color:  input.Color,
		Icon:   input.Icon,
		UserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCategory: %v", err)
		return category.CreateOutput{}, err
	}
	return category.CreateOutput{Category: created}, nil
}

// Update modifies an existing category. Returns ErrCategoryNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input category.UpdateInput) (category.UpdateOutput, error) {
	sc = model.ScopeOrDefault(sc)

	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
		return category.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return category.UpdateOutput{}, category.ErrCategoryNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name != "" && name != existing.Name {
		dup, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{Name: name, UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneCategory: %v", err)
			return category.UpdateOutput{}, err
		}
		if dup.ID != "" {
			return category.UpdateOutput{}, category.ErrDuplicateName
		}
	}

	order := existing.Order
	if input.Order != nil {
		order = *input.Order
	}

	updated, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		ID:     input.ID,
		Name:   coalesce(name, existing.Name),
		Color:  coalesce(input.Color, existing.Color),
		Icon:   coalesce(input.Icon, existing.Icon),
		Order:  order,
		UserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCategory: %v", err)
		return category.UpdateOutput{}, err
	}
	return category.UpdateOutput{Category: updated}, nil
}

// Delete removes a category. Events keep their category id.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	sc = model.ScopeOrDefault(sc)

	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneCategory: %v", err)
		return err
	}
	if existing.ID == "" {
		return category.ErrCategoryNotFound
	}

	if err := uc.repo.DeleteCategory(ctx, repo.DeleteCategoryOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCategory: %v", err)
		return err
	}
	return nil
}

// coalesce returns newVal unless it is empty. Used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
