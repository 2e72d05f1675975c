package model

import "time"

// Mood is the self-reported mood of a diary entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodExcited Mood = "excited"
	MoodAngry   Mood = "angry"
)

// IsValid reports whether m is a known mood.
func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad, MoodExcited, MoodAngry:
		return true
	}
	return false
}

// Diary is a journal entry. Persisted as part of the diaries.json blob.
type Diary struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	Weather   string    `json:"weather,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
