package blob_test

import (
	"context"
	"testing"
	"time"

	"primering/internal/event/repository"
	"primering/internal/event/repository/blob"
	"primering/internal/model"
	"primering/pkg/blobstore"
	"primering/pkg/log"
)

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	gw, err := blobstore.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return blob.New(gw, log.NewNop())
}

func at(day, hour int) time.Time {
	return time.Date(2024, 5, day, hour, 0, 0, 0, time.UTC)
}

func TestListEvents_Filters(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	seed := []model.Event{
		{Title: "late", StartDate: at(3, 10), EndDate: at(3, 11), CategoryID: "work", UserID: "demo"},
		{Title: "early", StartDate: at(1, 9), EndDate: at(1, 10), CategoryID: "personal", UserID: "demo"},
		{Title: "spanning", StartDate: at(1, 20), EndDate: at(2, 8), CategoryID: "work", UserID: "demo"},
		{Title: "other user", StartDate: at(2, 9), EndDate: at(2, 10), CategoryID: "work", UserID: "bob"},
	}
	for _, e := range seed {
		if _, err := r.CreateEvent(ctx, repository.CreateEventOptions{Event: e}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	tests := []struct {
		name string
		opt  repository.ListEventsOptions
		want []string
	}{
		{name: "All of user in start order", opt: repository.ListEventsOptions{UserID: "demo"}, want: []string{"early", "spanning", "late"}},
		{name: "Window overlaps", opt: repository.ListEventsOptions{UserID: "demo", From: at(2, 0), To: at(2, 23)}, want: []string{"spanning"}},
		{name: "Open end window", opt: repository.ListEventsOptions{UserID: "demo", From: at(3, 0)}, want: []string{"late"}},
		{name: "Category", opt: repository.ListEventsOptions{UserID: "demo", CategoryID: "work"}, want: []string{"spanning", "late"}},
		{name: "Any user", opt: repository.ListEventsOptions{To: at(2, 9)}, want: []string{"early", "spanning", "other user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListEvents(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListEvents: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %v", len(got), tt.want)
			}
			for i, title := range tt.want {
				if got[i].Title != title {
					t.Errorf("event %d = %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}
}

func TestEventLifecycle(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	created, err := r.CreateEvent(ctx, repository.CreateEventOptions{Event: model.Event{
		Title: "회의", StartDate: at(2, 14), EndDate: at(2, 15), UserID: "demo", Tags: []string{},
	}})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("created = %+v, want id and equal timestamps", created)
	}

	next := created
	next.Title = "디자인 회의"
	next.UserID = "mallory"
	updated, err := r.UpdateEvent(ctx, repository.UpdateEventOptions{Event: next})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if updated.Title != "디자인 회의" || updated.UserID != "demo" || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("updated = %+v", updated)
	}

	if err := r.DeleteEvent(ctx, repository.DeleteEventOptions{ID: created.ID, UserID: "bob"}); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if got, _ := r.GetOneEvent(ctx, repository.GetOneEventOptions{ID: created.ID}); got.ID == "" {
		t.Fatal("event of another user was deleted")
	}

	if err := r.DeleteEvent(ctx, repository.DeleteEventOptions{ID: created.ID, UserID: "demo"}); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	got, err := r.GetOneEvent(ctx, repository.GetOneEventOptions{ID: created.ID})
	if err != nil || got.ID != "" {
		t.Errorf("GetOneEvent after delete = %+v, %v; want zero value", got, err)
	}
}

func TestUpdateEvent_Missing(t *testing.T) {
	r := newRepo(t)
	if _, err := r.UpdateEvent(context.Background(), repository.UpdateEventOptions{Event: model.Event{ID: "nope"}}); err == nil {
		t.Error("expected error for missing event")
	}
}
