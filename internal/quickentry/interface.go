package quickentry

import (
	"context"

	"primering/internal/model"
)

// UseCase previews and commits quick-entry text as calendar events.
type UseCase interface {
	// Preview parses input against the user's categories without side effects.
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)

	// Commit parses input and creates a one-hour event from the draft.
	// It returns ErrNoDateFound when the input has no date.
	Commit(ctx context.Context, sc model.Scope, input CommitInput) (CommitOutput, error)
}
