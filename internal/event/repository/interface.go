package repository

import (
	"context"

	"primering/internal/model"
)

// Repository is the data store of the event domain.
type Repository interface {
	// ListEvents returns matching events ordered by start date.
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	// GetOneEvent returns a zero-value event (ID == "") when nothing matches.
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, opt DeleteEventOptions) error
}
