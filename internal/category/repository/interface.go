package repository

import (
	"context"

	"primering/internal/model"
)

// Repository is the data store of the category domain.
type Repository interface {
	// ListCategories returns categories in stored order. Until the first write
	// the default set is returned.
	ListCategories(ctx context.Context, opt ListCategoriesOptions) ([]model.Category, error)
	// GetOneCategory returns a zero-value category (ID == "") when nothing matches.
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (model.Category, error)
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (model.Category, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (model.Category, error)
	DeleteCategory(ctx context.Context, opt DeleteCategoryOptions) error
}
