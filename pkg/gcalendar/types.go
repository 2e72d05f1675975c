package gcalendar

import (
	"context"
	"time"
)

const (
	// PrimaryCalendarID is used when a request leaves CalendarID empty.
	PrimaryCalendarID = "primary"
	// DefaultTokenPath is where scripts/gcal-auth writes the OAuth token.
	DefaultTokenPath = "token.json"
)

// Calendar is the subset of the client used by event mirroring.
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string // e.g. "Asia/Seoul"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
