package quickentry

import "errors"

// Domain-specific errors for the quickentry package.
var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrNoDateFound   = errors.New("no date found in input")
	ErrCommitFailed  = errors.New("failed to create event")
	ErrUnknownLocale = errors.New("unknown locale")
	ErrInvalidLocale = errors.New("invalid locale")
)
