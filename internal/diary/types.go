package diary

import (
	"time"

	"primering/internal/model"
)

// --- UseCase Inputs ---

// CreateInput holds a new entry. A zero Date means today; an empty Mood means neutral.
type CreateInput struct {
	Date    time.Time
	Title   string
	Content string
	Mood    model.Mood
	Weather string
}

// ListInput keeps entries dated within [From, To]. Zero bounds are open.
type ListInput struct {
	From time.Time
	To   time.Time
}

// UpdateInput is a partial update; empty values keep the stored ones.
type UpdateInput struct {
	ID      string
	Date    *time.Time
	Title   string
	Content string
	Mood    model.Mood
	Weather *string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Diary model.Diary
}

type ListOutput struct {
	Diaries []model.Diary
}

type DetailOutput struct {
	Diary model.Diary
}

type UpdateOutput struct {
	Diary model.Diary
}
