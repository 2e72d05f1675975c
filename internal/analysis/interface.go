package analysis

import (
	"context"

	"primering/internal/model"
	"primering/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
}

// Generator is the inference collaborator, satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
