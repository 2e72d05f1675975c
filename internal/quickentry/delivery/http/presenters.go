package http

import (
	"time"

	"primering/internal/model"
	"primering/internal/quickentry"
)

// --- Request DTOs ---

type quickEntryReq struct {
	Input string     `json:"input" binding:"max=500"`
	Now   *time.Time `json:"now"`
}

func (r quickEntryReq) reference() time.Time {
	if r.Now == nil {
		return time.Time{}
	}
	return *r.Now
}

// --- Response DTOs ---

type draftResp struct {
	Date       time.Time `json:"date"`
	Title      string    `json:"title"`
	CategoryID *string   `json:"category_id"`
}

func newDraftResp(d quickentry.ParseResult) draftResp {
	resp := draftResp{Date: d.Date, Title: d.Title}
	if d.CategoryID != "" {
		id := d.CategoryID
		resp.CategoryID = &id
	}
	return resp
}

type previewResp struct {
	Preview *draftResp `json:"preview"`
}

func (h *handler) newPreviewResp(out quickentry.PreviewOutput) previewResp {
	if !out.Found {
		return previewResp{}
	}
	d := newDraftResp(out.Draft)
	return previewResp{Preview: &d}
}

type eventResp struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CategoryID string    `json:"category_id"`
	Priority   string    `json:"priority"`
}

type commitResp struct {
	Draft draftResp `json:"draft"`
	Event eventResp `json:"event"`
}

func (h *handler) newCommitResp(out quickentry.CommitOutput) commitResp {
	return commitResp{
		Draft: newDraftResp(out.Draft),
		Event: newEventResp(out.Event),
	}
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:         e.ID,
		Title:      e.Title,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		CategoryID: e.CategoryID,
		Priority:   string(e.Priority),
	}
}
