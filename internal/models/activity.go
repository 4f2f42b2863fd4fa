package models

import (
	"fmt"
	"time"
)

// ActivityType enumerates the supported kinds of physical activity.
type ActivityType string

const (
	ActivityWalking  ActivityType = "Walking"
	ActivityRunning  ActivityType = "Running"
	ActivityCycling  ActivityType = "Cycling"
	ActivitySwimming ActivityType = "Swimming"
	ActivityOther    ActivityType = "Other"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityWalking, ActivityRunning, ActivityCycling, ActivitySwimming, ActivityOther:
		return true
	}
	return false
}

// ActivityEntry is a single logged physical activity. Entries are
// append-mostly: they can be created and deleted but never updated.
type ActivityEntry struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	UserID          uint         `gorm:"not null;index:idx_activity_user_time" json:"user_id"`
	Type            ActivityType `gorm:"not null" json:"type"`
	Steps           int          `gorm:"not null;default:0" json:"steps"`
	DistanceKM      float64      `gorm:"not null;default:0" json:"distance_km"`
	Calories        float64      `gorm:"not null;default:0" json:"calories"`
	DurationMinutes int          `gorm:"not null;default:0" json:"duration_minutes"`
	OccurredAt      time.Time    `gorm:"not null;index:idx_activity_user_time" json:"occurred_at"`
	CreatedAt       time.Time    `json:"created_at"`
}

// Validate checks field constraints before the entry reaches storage.
func (e *ActivityEntry) Validate() error {
	if !e.Type.Valid() {
		return NewValidationError(fmt.Sprintf("Unknown activity type %q", string(e.Type)))
	}
	if e.Steps < 0 {
		return NewValidationError("Steps must not be negative")
	}
	if e.DistanceKM < 0 {
		return NewValidationError("Distance must not be negative")
	}
	if e.Calories < 0 {
		return NewValidationError("Calories must not be negative")
	}
	if e.DurationMinutes < 0 {
		return NewValidationError("Duration must not be negative")
	}
	return nil
}
