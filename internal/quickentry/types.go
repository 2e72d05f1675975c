package quickentry

import (
	"time"

	"primering/internal/model"
)

// ParseResult is the draft produced from quick-entry text. An empty
// CategoryID means no category was available.
type ParseResult struct {
	Date       time.Time
	Title      string
	CategoryID string
}

// PreviewInput is the input for Preview.
type PreviewInput struct {
	Input string
	Now   time.Time // zero means the current time
}

// PreviewOutput holds the draft. Found is false when no date was recognized.
type PreviewOutput struct {
	Draft ParseResult
	Found bool
}

// CommitInput is the input for Commit.
type CommitInput struct {
	Input string
	Now   time.Time // zero means the current time
}

// CommitOutput is the result of a successful commit.
type CommitOutput struct {
	Draft ParseResult
	Event model.Event
}
