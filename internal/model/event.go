package model

import "time"

// Priority ranks an event.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// RecurrenceRule is the repeat unit of a recurring event.
type RecurrenceRule string

const (
	RecurrenceDaily   RecurrenceRule = "daily"
	RecurrenceWeekly  RecurrenceRule = "weekly"
	RecurrenceMonthly RecurrenceRule = "monthly"
	RecurrenceYearly  RecurrenceRule = "yearly"
	RecurrenceCustom  RecurrenceRule = "custom"
)

// IsValid reports whether r is a known rule.
func (r RecurrenceRule) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly, RecurrenceCustom:
		return true
	}
	return false
}

// Recurrence describes how an event repeats.
type Recurrence struct {
	Rule       RecurrenceRule `json:"rule"`
	Interval   int            `json:"interval"`
	EndDate    *time.Time     `json:"endDate,omitempty"`
	Exceptions []time.Time    `json:"exceptions,omitempty"`
}

// Event is a calendar event. Persisted as part of the events.json blob.
type Event struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	StartDate   time.Time              `json:"startDate"`
	EndDate     time.Time              `json:"endDate"`
	AllDay      bool                   `json:"allDay"`
	Recurrence  *Recurrence            `json:"recurrence,omitempty"`
	CategoryID  string                 `json:"categoryId"`
	Tags        []string               `json:"tags"`
	Color       string                 `json:"color,omitempty"`
	Priority    Priority               `json:"priority"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	UserID      string                 `json:"userId"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
