package datemath

import "time"

// Options tunes how ambiguous phrases are resolved.
type Options struct {
	// ForwardBias prefers future interpretations: a bare weekday or a year-less
	// date that already passed resolves to its next occurrence.
	ForwardBias bool
}

// Candidate is a date phrase found inside free text.
type Candidate struct {
	Text    string    // matched substring, trailing time included
	Index   int       // byte offset of Text in the input
	Start   time.Time // resolved instant
	HasTime bool      // true when the phrase carried an explicit clock time
}

// End returns the byte offset just past the matched text.
func (c Candidate) End() int {
	return c.Index + len(c.Text)
}
