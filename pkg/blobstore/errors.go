package blobstore

import "errors"

var (
	ErrInvalidName = errors.New("invalid blob name")
	ErrTooLarge    = errors.New("blob too large")
)
