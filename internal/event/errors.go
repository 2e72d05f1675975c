package event

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrTitleRequired     = errors.New("event title is required")
	ErrInvalidTimeRange  = errors.New("event end must not be before its start")
	ErrInvalidPriority   = errors.New("invalid event priority")
	ErrInvalidRecurrence = errors.New("invalid event recurrence")
)
