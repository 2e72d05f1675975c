package http

import (
	"time"

	"primering/internal/event"
	"primering/internal/model"
	"primering/pkg/response"
)

// --- Request DTOs ---

type recurrenceReq struct {
	Rule       string      `json:"rule"     binding:"required"`
	Interval   int         `json:"interval" binding:"min=0"`
	EndDate    *time.Time  `json:"end_date"`
	Exceptions []time.Time `json:"exceptions"`
}

func (r *recurrenceReq) toModel() *model.Recurrence {
	if r == nil {
		return nil
	}
	return &model.Recurrence{
		Rule:       model.RecurrenceRule(r.Rule),
		Interval:   r.Interval,
		EndDate:    r.EndDate,
		Exceptions: r.Exceptions,
	}
}

type createReq struct {
	Title       string                 `json:"title"       binding:"required,max=200"`
	Description string                 `json:"description" binding:"max=5000"`
	StartDate   time.Time              `json:"start_date"  binding:"required"`
	EndDate     time.Time              `json:"end_date"    binding:"required"`
	AllDay      bool                   `json:"all_day"`
	Recurrence  *recurrenceReq         `json:"recurrence"`
	CategoryID  string                 `json:"category_id"`
	Tags        []string               `json:"tags"`
	Color       string                 `json:"color"       binding:"omitempty,hexcolor"`
	Priority    string                 `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Metadata    map[string]interface{} `json:"metadata"`
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		AllDay:      r.AllDay,
		Recurrence:  r.Recurrence.toModel(),
		CategoryID:  r.CategoryID,
		Tags:        r.Tags,
		Color:       r.Color,
		Priority:    model.Priority(r.Priority),
		Metadata:    r.Metadata,
	}
}

type listReq struct {
	From       string `form:"from"`
	To         string `form:"to"`
	CategoryID string `form:"category_id"`
}

type updateReq struct {
	ID          string         `json:"-"`
	Title       string         `json:"title"       binding:"max=200"`
	Description *string        `json:"description" binding:"omitempty,max=5000"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	AllDay      *bool          `json:"all_day"`
	Recurrence  *recurrenceReq `json:"recurrence"`
	CategoryID  string         `json:"category_id"`
	Tags        []string       `json:"tags"`
	Color       string         `json:"color"       binding:"omitempty,hexcolor"`
	Priority    string         `json:"priority"    binding:"omitempty,oneof=low medium high"`
}

func (r updateReq) toInput() event.UpdateInput {
	return event.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		AllDay:      r.AllDay,
		Recurrence:  r.Recurrence.toModel(),
		CategoryID:  r.CategoryID,
		Tags:        r.Tags,
		Color:       r.Color,
		Priority:    model.Priority(r.Priority),
	}
}

// --- Response DTOs ---

type recurrenceResp struct {
	Rule       string      `json:"rule"`
	Interval   int         `json:"interval"`
	EndDate    *time.Time  `json:"end_date,omitempty"`
	Exceptions []time.Time `json:"exceptions,omitempty"`
}

type eventResp struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	StartDate   time.Time              `json:"start_date"`
	EndDate     time.Time              `json:"end_date"`
	AllDay      bool                   `json:"all_day"`
	Recurrence  *recurrenceResp        `json:"recurrence,omitempty"`
	CategoryID  string                 `json:"category_id"`
	Tags        []string               `json:"tags"`
	Color       string                 `json:"color,omitempty"`
	Priority    string                 `json:"priority"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   response.DateTime      `json:"created_at"`
	UpdatedAt   response.DateTime      `json:"updated_at"`
}

func newEventResp(e model.Event) eventResp {
	resp := eventResp{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		AllDay:      e.AllDay,
		CategoryID:  e.CategoryID,
		Tags:        e.Tags,
		Color:       e.Color,
		Priority:    string(e.Priority),
		Metadata:    e.Metadata,
		CreatedAt:   response.DateTime(e.CreatedAt),
		UpdatedAt:   response.DateTime(e.UpdatedAt),
	}
	if r := e.Recurrence; r != nil {
		resp.Recurrence = &recurrenceResp{
			Rule:       string(r.Rule),
			Interval:   r.Interval,
			EndDate:    r.EndDate,
			Exceptions: r.Exceptions,
		}
	}
	return resp
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return listResp{Events: events}
}

type itemResp struct {
	Event        eventResp `json:"event"`
	CalendarLink string    `json:"calendar_link,omitempty"`
}

func (h *handler) newItemResp(e model.Event, calendarLink string) itemResp {
	return itemResp{Event: newEventResp(e), CalendarLink: calendarLink}
}
