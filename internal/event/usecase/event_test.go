package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"primering/internal/event"
	"primering/internal/event/repository/blob"
	"primering/internal/event/usecase"
	"primering/internal/model"
	"primering/pkg/blobstore"
	"primering/pkg/gcalendar"
	"primering/pkg/log"
)

type mockCalendar struct {
	createErr error
	created   []gcalendar.CreateEventRequest
	deleted   []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "g-1", HtmlLink: "https://calendar.google.com/g-1"}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return nil, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}

func newUseCase(t *testing.T, cal gcalendar.Calendar) event.UseCase {
	t.Helper()
	gw, err := blobstore.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return usecase.New(log.NewNop(), blob.New(gw, log.NewNop()), cal, "primary", "Asia/Seoul")
}

var start = time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   event.CreateInput
		wantErr error
	}{
		{name: "Defaults applied", input: event.CreateInput{Title: " 회의 ", StartDate: start, EndDate: start.Add(time.Hour)}},
		{name: "Blank title", input: event.CreateInput{Title: " ", StartDate: start, EndDate: start}, wantErr: event.ErrTitleRequired},
		{name: "End before start", input: event.CreateInput{Title: "x", StartDate: start, EndDate: start.Add(-time.Minute)}, wantErr: event.ErrInvalidTimeRange},
		{name: "Bad priority", input: event.CreateInput{Title: "x", StartDate: start, EndDate: start, Priority: "urgent"}, wantErr: event.ErrInvalidPriority},
		{name: "Bad recurrence", input: event.CreateInput{Title: "x", StartDate: start, EndDate: start, Recurrence: &model.Recurrence{Rule: "hourly"}}, wantErr: event.ErrInvalidRecurrence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t, nil)
			out, err := uc.Create(ctx, model.Scope{}, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			e := out.Event
			if e.Title != "회의" || e.Priority != model.PriorityMedium || e.CategoryID != model.DefaultCategoryID {
				t.Errorf("unexpected defaults: %+v", e)
			}
			if e.Tags == nil || e.UserID != model.DefaultUserID {
				t.Errorf("want empty tags and default user, got %+v", e)
			}
			if out.CalendarLink != "" {
				t.Errorf("no calendar configured, got link %q", out.CalendarLink)
			}
		})
	}
}

func TestCreate_MirrorsToCalendar(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{}
	uc := newUseCase(t, cal)

	out, err := uc.Create(ctx, model.Scope{}, event.CreateInput{Title: "회의", StartDate: start, EndDate: start.Add(time.Hour), Tags: []string{"design"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.CalendarLink == "" || len(cal.created) != 1 {
		t.Fatalf("expected one mirrored event, got link %q and %d calls", out.CalendarLink, len(cal.created))
	}
	if cal.created[0].Timezone != "Asia/Seoul" || cal.created[0].Description != "#design" {
		t.Errorf("unexpected mirror request: %+v", cal.created[0])
	}

	detail, err := uc.Detail(ctx, model.Scope{}, out.Event.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Event.Metadata[event.MetaGoogleEventID] != "g-1" {
		t.Errorf("remote id not stored: %+v", detail.Event.Metadata)
	}

	if err := uc.Delete(ctx, model.Scope{}, out.Event.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != "g-1" {
		t.Errorf("expected mirrored event to be deleted, got %v", cal.deleted)
	}
}

func TestCreate_CalendarFailureIsNonFatal(t *testing.T) {
	uc := newUseCase(t, &mockCalendar{createErr: errors.New("quota exceeded")})

	out, err := uc.Create(context.Background(), model.Scope{}, event.CreateInput{Title: "회의", StartDate: start, EndDate: start})
	if err != nil {
		t.Fatalf("Create should succeed without the mirror: %v", err)
	}
	if out.Event.ID == "" || out.CalendarLink != "" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, nil)

	out, err := uc.Create(ctx, model.Scope{}, event.CreateInput{Title: "회의", Description: "3층", StartDate: start, EndDate: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := ""
	later := start.Add(2 * time.Hour)
	tests := []struct {
		name    string
		input   event.UpdateInput
		wantErr error
		check   func(t *testing.T, e model.Event)
	}{
		{
			name:  "Partial title keeps others",
			input: event.UpdateInput{ID: out.Event.ID, Title: "디자인 회의"},
			check: func(t *testing.T, e model.Event) {
				if e.Title != "디자인 회의" || e.Description != "3층" || !e.StartDate.Equal(start) {
					t.Errorf("unexpected merge: %+v", e)
				}
			},
		},
		{
			name:  "Clear description",
			input: event.UpdateInput{ID: out.Event.ID, Description: &empty, Priority: model.PriorityHigh},
			check: func(t *testing.T, e model.Event) {
				if e.Description != "" || e.Priority != model.PriorityHigh {
					t.Errorf("unexpected merge: %+v", e)
				}
			},
		},
		{name: "Start after end", input: event.UpdateInput{ID: out.Event.ID, StartDate: &later}, wantErr: event.ErrInvalidTimeRange},
		{name: "Missing", input: event.UpdateInput{ID: "nope", Title: "x"}, wantErr: event.ErrEventNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Update(ctx, model.Scope{}, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, got.Event)
			}
		})
	}
}

func TestScopeIsolation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, nil)

	out, err := uc.Create(ctx, model.Scope{UserID: "alice"}, event.CreateInput{Title: "비밀", StartDate: start, EndDate: start})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := uc.Detail(ctx, model.Scope{UserID: "bob"}, out.Event.ID); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("Detail from another user: err = %v, want ErrEventNotFound", err)
	}
	if err := uc.Delete(ctx, model.Scope{UserID: "bob"}, out.Event.ID); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("Delete from another user: err = %v, want ErrEventNotFound", err)
	}

	list, err := uc.List(ctx, model.Scope{UserID: "alice"}, event.ListInput{From: start.Add(-time.Hour), To: start.Add(time.Hour)})
	if err != nil || len(list.Events) != 1 {
		t.Errorf("List = %+v, %v; want the one event", list, err)
	}

	if _, err := uc.List(ctx, model.Scope{}, event.ListInput{From: start, To: start.Add(-time.Hour)}); !errors.Is(err, event.ErrInvalidTimeRange) {
		t.Errorf("List inverted window: err = %v", err)
	}
}
