package diary

import "errors"

var (
	ErrDiaryNotFound    = errors.New("diary not found")
	ErrTitleRequired    = errors.New("diary title is required")
	ErrContentRequired  = errors.New("diary content is required")
	ErrInvalidMood      = errors.New("invalid diary mood")
	ErrInvalidDateRange = errors.New("diary window end must not be before its start")
)
