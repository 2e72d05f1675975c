package repository

// ListCategoriesOptions filters categories. An empty UserID matches all.
type ListCategoriesOptions struct {
	UserID string
}

// GetOneCategoryOptions holds filter parameters for fetching a single category.
// All non-empty fields are applied as AND conditions.
type GetOneCategoryOptions struct {
	ID     string
	Name   string
	UserID string
}

type CreateCategoryOptions struct {
	Name   string
	Color  string
	Icon   string
	UserID string
}

type UpdateCategoryOptions struct {
	ID     string
	Name   string
	Color  string
	Icon   string
	Order  int
	UserID string
}

type DeleteCategoryOptions struct {
	ID     string
	UserID string
}
