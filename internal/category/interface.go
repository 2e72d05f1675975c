package category

import (
	"context"

	"primering/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
