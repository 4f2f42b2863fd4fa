package models

import "time"

// Mood ratings are integers on a 1-10 scale, inclusive.
const (
	MoodRatingMin = 1
	MoodRatingMax = 10
)

// MoodEntry records a mood rating with optional free-text notes.
type MoodEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_mood_user_time" json:"user_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Notes      string    `json:"notes,omitempty"`
	OccurredOn time.Time `gorm:"not null;index:idx_mood_user_time" json:"occurred_on"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks field constraints before the entry reaches storage.
func (e *MoodEntry) Validate() error {
	if e.Rating < MoodRatingMin || e.Rating > MoodRatingMax {
		return NewValidationError("Rating must be between 1 and 10")
	}
	return nil
}
