package usecase

import (
	"strings"

	"primering/internal/event"
	"primering/internal/model"
)

func validate(e model.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return event.ErrTitleRequired
	}
	if e.EndDate.Before(e.StartDate) {
		return event.ErrInvalidTimeRange
	}
	if !e.Priority.IsValid() {
		return event.ErrInvalidPriority
	}
	if r := e.Recurrence; r != nil {
		if !r.Rule.IsValid() || r.Interval < 0 {
			return event.ErrInvalidRecurrence
		}
		if r.EndDate != nil && r.EndDate.Before(e.StartDate) {
			return event.ErrInvalidRecurrence
		}
	}
	return nil
}

// coalesce returns newVal unless it is empty. Used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
