package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"primering/internal/event"
	"primering/internal/middleware"
	"primering/internal/model"
	"primering/pkg/log"
	"primering/pkg/response"
)

type mockUseCase struct {
	err       error
	gotList   event.ListInput
	gotCreate event.CreateInput
	gotUpdate event.UpdateInput
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	m.gotCreate = input
	return event.CreateOutput{
		Event:        model.Event{ID: "ev-1", Title: input.Title, StartDate: input.StartDate, EndDate: input.EndDate, Tags: []string{}},
		CalendarLink: "https://calendar.google.com/ev-1",
	}, m.err
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	m.gotList = input
	return event.ListOutput{Events: []model.Event{{ID: "ev-1", Title: "회의"}}}, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	return event.DetailOutput{Event: model.Event{ID: id}}, m.err
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.UpdateOutput, error) {
	m.gotUpdate = input
	return event.UpdateOutput{Event: model.Event{ID: input.ID, Title: input.Title}}, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}

func newRouter(uc event.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/events"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func TestHandlers(t *testing.T) {
	validBody := `{"title":"회의","start_date":"2024-05-02T14:00:00+09:00","end_date":"2024-05-02T15:00:00+09:00"}`

	tests := []struct {
		name     string
		ucErr    error
		method   string
		path     string
		body     string
		wantCode int
	}{
		{name: "List", method: http.MethodGet, path: "/api/v1/events", wantCode: http.StatusOK},
		{name: "List with window", method: http.MethodGet, path: "/api/v1/events?from=2024-05-01T00:00:00Z&to=2024-05-31T00:00:00Z", wantCode: http.StatusOK},
		{name: "List bad window", method: http.MethodGet, path: "/api/v1/events?from=yesterday", wantCode: http.StatusBadRequest},
		{name: "Create", method: http.MethodPost, path: "/api/v1/events", body: validBody, wantCode: http.StatusOK},
		{name: "Create missing start", method: http.MethodPost, path: "/api/v1/events", body: `{"title":"x"}`, wantCode: http.StatusBadRequest},
		{name: "Create bad priority", method: http.MethodPost, path: "/api/v1/events", body: `{"title":"x","start_date":"2024-05-02T14:00:00Z","end_date":"2024-05-02T14:00:00Z","priority":"urgent"}`, wantCode: http.StatusBadRequest},
		{name: "Create inverted range", ucErr: event.ErrInvalidTimeRange, method: http.MethodPost, path: "/api/v1/events", body: validBody, wantCode: http.StatusBadRequest},
		{name: "Detail missing", ucErr: event.ErrEventNotFound, method: http.MethodGet, path: "/api/v1/events/nope", wantCode: http.StatusNotFound},
		{name: "Update", method: http.MethodPut, path: "/api/v1/events/ev-1", body: `{"title":"디자인 회의"}`, wantCode: http.StatusOK},
		{name: "Delete", method: http.MethodDelete, path: "/api/v1/events/ev-1", wantCode: http.StatusOK},
		{name: "Store failure", ucErr: errors.New("disk full"), method: http.MethodGet, path: "/api/v1/events", wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{err: tt.ucErr})
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d; body %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestCreate_Body(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	body := `{"title":"회의","start_date":"2024-05-02T14:00:00+09:00","end_date":"2024-05-02T15:00:00+09:00","tags":["design"],"recurrence":{"rule":"weekly","interval":1}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	want := time.Date(2024, 5, 2, 5, 0, 0, 0, time.UTC)
	if !uc.gotCreate.StartDate.Equal(want) {
		t.Errorf("start = %v, want %v", uc.gotCreate.StartDate, want)
	}
	if uc.gotCreate.Recurrence == nil || uc.gotCreate.Recurrence.Rule != model.RecurrenceWeekly {
		t.Errorf("recurrence = %+v", uc.gotCreate.Recurrence)
	}

	var resp struct {
		response.Resp
		Data struct {
			Event struct {
				ID string `json:"id"`
			} `json:"event"`
			CalendarLink string `json:"calendar_link"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Event.ID != "ev-1" || resp.Data.CalendarLink == "" {
		t.Errorf("unexpected body: %+v", resp.Data)
	}
}

func TestUpdate_PartialBody(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/events/ev-1", strings.NewReader(`{"all_day":false,"description":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.gotUpdate.ID != "ev-1" || uc.gotUpdate.AllDay == nil || uc.gotUpdate.Description == nil {
		t.Errorf("explicit fields not forwarded: %+v", uc.gotUpdate)
	}
	if uc.gotUpdate.StartDate != nil || uc.gotUpdate.Tags != nil {
		t.Errorf("omitted fields should stay nil: %+v", uc.gotUpdate)
	}
}
