package models

import "time"

// NutritionEntry records one day's intake of calories and macronutrients.
type NutritionEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_nutrition_user_time" json:"user_id"`
	Calories   float64   `gorm:"not null;default:0" json:"calories"`
	ProteinG   float64   `gorm:"not null;default:0" json:"protein_g"`
	CarbsG     float64   `gorm:"not null;default:0" json:"carbs_g"`
	FatsG      float64   `gorm:"not null;default:0" json:"fats_g"`
	OccurredOn time.Time `gorm:"not null;index:idx_nutrition_user_time" json:"occurred_on"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks field constraints before the entry reaches storage.
func (e *NutritionEntry) Validate() error {
	if e.Calories < 0 {
		return NewValidationError("Calories must not be negative")
	}
	if e.ProteinG < 0 {
		return NewValidationError("Protein must not be negative")
	}
	if e.CarbsG < 0 {
		return NewValidationError("Carbs must not be negative")
	}
	if e.FatsG < 0 {
		return NewValidationError("Fats must not be negative")
	}
	return nil
}
