package event

import (
	"time"

	"primering/internal/model"
)

// Metadata keys written when an event is mirrored to Google Calendar.
const (
	MetaGoogleEventID = "googleEventId"
	MetaGoogleLink    = "googleCalendarLink"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	AllDay      bool
	Recurrence  *model.Recurrence
	CategoryID  string
	Tags        []string
	Color       string
	Priority    model.Priority
	Metadata    map[string]interface{}
}

// ListInput filters events. Zero times leave that side of the window open;
// an event is included when it overlaps the window.
type ListInput struct {
	From       time.Time
	To         time.Time
	CategoryID string
}

// UpdateInput is a partial update. Empty strings and nil pointers or slices
// keep the stored value.
type UpdateInput struct {
	ID          string
	Title       string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	AllDay      *bool
	Recurrence  *model.Recurrence
	CategoryID  string
	Tags        []string
	Color       string
	Priority    model.Priority
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Event        model.Event
	CalendarLink string
}

type ListOutput struct {
	Events []model.Event
}

type DetailOutput struct {
	Event model.Event
}

type UpdateOutput struct {
	Event model.Event
}
