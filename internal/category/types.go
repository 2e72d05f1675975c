package category

import "primering/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name  string
	Color string
	Icon  string
}

// UpdateInput is a partial update; empty strings and a nil Order keep the stored value.
type UpdateInput struct {
	ID    string
	Name  string
	Color string
	Icon  string
	Order *int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Categories []model.Category
}

type CreateOutput struct {
	Category model.Category
}

type UpdateOutput struct {
	Category model.Category
}
