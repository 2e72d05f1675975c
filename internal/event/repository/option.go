package repository

import (
	"time"

	"primering/internal/model"
)

// ListEventsOptions filters events. Empty fields are not applied.
type ListEventsOptions struct {
	UserID     string
	From       time.Time
	To         time.Time
	CategoryID string
}

type GetOneEventOptions struct {
	ID     string
	UserID string
}

// CreateEventOptions carries the new event. ID and timestamps are assigned by the store.
type CreateEventOptions struct {
	Event model.Event
}

// UpdateEventOptions replaces the mutable fields of the event with Event.ID.
type UpdateEventOptions struct {
	Event model.Event
}

type DeleteEventOptions struct {
	ID     string
	UserID string
}
