package usecase

import (
	"context"
	"fmt"
	"strings"

	"primering/internal/event"
	repo "primering/internal/event/repository"
	"primering/internal/model"
	"primering/pkg/gcalendar"
)

// tryMirrorToCalendar copies a new event to Google Calendar and records the remote
// id in its metadata. Returns the event link, or "" when mirroring is off or fails.
func (uc *implUseCase) tryMirrorToCalendar(ctx context.Context, e *model.Event) string {
	if uc.calendar == nil {
		return ""
	}

	description := e.Description
	if len(e.Tags) > 0 {
		description += fmt.Sprintf("\n\n#%s", strings.Join(e.Tags, " #"))
	}

	remote, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     e.Title,
		Description: strings.TrimSpace(description),
		StartTime:   e.StartDate,
		EndTime:     e.EndDate,
		AllDay:      e.AllDay,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create: calendar mirror failed for %q (non-fatal): %v", e.Title, err)
		return ""
	}

	if e.Metadata == nil {
		e.Metadata = map[string]interface{}{}
	}
	e.Metadata[event.MetaGoogleEventID] = remote.ID
	e.Metadata[event.MetaGoogleLink] = remote.HtmlLink

	updated, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{Event: *e})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create: storing calendar id for %s failed (non-fatal): %v", e.ID, err)
		return remote.HtmlLink
	}
	*e = updated
	return remote.HtmlLink
}

// tryRemoveFromCalendar deletes the mirrored copy of e. Failures are logged only.
func (uc *implUseCase) tryRemoveFromCalendar(ctx context.Context, e model.Event) {
	if uc.calendar == nil {
		return
	}
	remoteID, _ := e.Metadata[event.MetaGoogleEventID].(string)
	if remoteID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, remoteID); err != nil {
		uc.l.Warnf(ctx, "uc.Delete: calendar delete failed for %s (non-fatal): %v", e.ID, err)
	}
}
