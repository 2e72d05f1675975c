package repository

import (
	"context"

	"primering/internal/model"
)

// Repository is the data store of the diary domain.
type Repository interface {
	// ListDiaries returns matching entries, newest date first.
	ListDiaries(ctx context.Context, opt ListDiariesOptions) ([]model.Diary, error)
	// GetOneDiary returns a zero-value diary (ID == "") when nothing matches.
	GetOneDiary(ctx context.Context, opt GetOneDiaryOptions) (model.Diary, error)
	CreateDiary(ctx context.Context, opt CreateDiaryOptions) (model.Diary, error)
	UpdateDiary(ctx context.Context, opt UpdateDiaryOptions) (model.Diary, error)
	DeleteDiary(ctx context.Context, opt DeleteDiaryOptions) error
}
