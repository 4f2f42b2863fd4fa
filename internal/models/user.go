// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account that owns tracked entries.
// Username and email are unique and immutable after creation; profile
// fields are optional and editable.
type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Username    string     `gorm:"uniqueIndex;not null" json:"username"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Bio         string     `json:"bio"`
	Location    string     `json:"location"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Activities []ActivityEntry  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Nutrition  []NutritionEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sleep      []SleepEntry     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Moods      []MoodEntry      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
