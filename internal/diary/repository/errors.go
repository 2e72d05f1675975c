package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert diary")
	ErrFailedToGet    = errors.New("failed to get diary")
	ErrFailedToList   = errors.New("failed to list diaries")
	ErrFailedToUpdate = errors.New("failed to update diary")
	ErrFailedToDelete = errors.New("failed to delete diary")
	ErrNotFound       = errors.New("diary not found in store")
)
