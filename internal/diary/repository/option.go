package repository

import (
	"time"

	"primering/internal/model"
)

// ListDiariesOptions filters entries. Empty fields are not applied.
type ListDiariesOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}

type GetOneDiaryOptions struct {
	ID     string
	UserID string
}

// CreateDiaryOptions carries the new entry. ID and timestamps are assigned by the store.
type CreateDiaryOptions struct {
	Diary model.Diary
}

// UpdateDiaryOptions replaces the mutable fields of the entry with Diary.ID.
type UpdateDiaryOptions struct {
	Diary model.Diary
}

type DeleteDiaryOptions struct {
	ID     string
	UserID string
}
