package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert category")
	ErrFailedToGet    = errors.New("failed to get category")
	ErrFailedToList   = errors.New("failed to list categories")
	ErrFailedToUpdate = errors.New("failed to update category")
	ErrFailedToDelete = errors.New("failed to delete category")
	ErrNotFound       = errors.New("category not found in store")
)
