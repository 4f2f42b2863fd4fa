package database

import "wellspring/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Users come first so entry tables can declare their foreign keys against it.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.ActivityEntry{},
		&models.NutritionEntry{},
		&models.SleepEntry{},
		&models.MoodEntry{},
	}
}
