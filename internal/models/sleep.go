package models

import (
	"fmt"
	"time"
)

// SleepQuality enumerates the subjective quality ratings for a night's sleep.
type SleepQuality string

const (
	SleepPoor      SleepQuality = "Poor"
	SleepFair      SleepQuality = "Fair"
	SleepGood      SleepQuality = "Good"
	SleepExcellent SleepQuality = "Excellent"
)

// Valid reports whether q is one of the known quality ratings.
func (q SleepQuality) Valid() bool {
	switch q {
	case SleepPoor, SleepFair, SleepGood, SleepExcellent:
		return true
	}
	return false
}

// SleepEntry records hours slept and perceived quality for one night.
type SleepEntry struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	UserID     uint         `gorm:"not null;index:idx_sleep_user_time" json:"user_id"`
	Hours      float64      `gorm:"not null;default:0" json:"hours"`
	Quality    SleepQuality `gorm:"not null" json:"quality"`
	OccurredOn time.Time    `gorm:"not null;index:idx_sleep_user_time" json:"occurred_on"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Validate checks field constraints before the entry reaches storage.
func (e *SleepEntry) Validate() error {
	if e.Hours < 0 {
		return NewValidationError("Hours must not be negative")
	}
	if !e.Quality.Valid() {
		return NewValidationError(fmt.Sprintf("Unknown sleep quality %q", string(e.Quality)))
	}
	return nil
}
