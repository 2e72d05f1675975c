package analysis

import "errors"

var (
	ErrContentRequired = errors.New("diary content is required")
	// ErrAnalysisSuperseded is returned to an analysis whose key was reused by a newer request.
	ErrAnalysisSuperseded = errors.New("analysis superseded by a newer request")
	ErrAnalysisFailed     = errors.New("analysis failed")
	ErrUnavailable        = errors.New("no language model configured")
)
