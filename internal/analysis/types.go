package analysis

import (
	"time"

	"primering/internal/model"
)

// AnalyzeInput names either a stored diary or free content.
// Key groups requests so that only the newest one per key is delivered;
// it defaults to the diary id.
type AnalyzeInput struct {
	DiaryID string
	Content string
	Date    time.Time
	Key     string
}

type AnalyzeOutput struct {
	Result model.AnalysisResult
	// Parsed is false when Result is the fallback built from an unparseable reply.
	Parsed   bool
	Cached   bool
	Provider string
	Model    string
}
