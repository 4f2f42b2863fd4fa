package seed

import (
	"fmt"
	"log"

	"wellspring/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	EntriesPerKind int
	MaxDays        int
	ShouldClean    bool
	RandomSeed     int64
}

// Run populates the database with demo accounts and entry histories.
func Run(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users with ~%d entries per kind each...", opts.NumUsers, opts.EntriesPerKind)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d users created", len(users))

	for _, user := range users {
		if err := f.CreateEntryHistory(user.ID, opts.EntriesPerKind); err != nil {
			return fmt.Errorf("failed to create entries for user %d: %w", user.ID, err)
		}
	}
	log.Printf("✓ entry histories created")

	return nil
}

// CreateEntryHistory persists n entries of each kind for the user, batched
// per kind.
func (f *Factory) CreateEntryHistory(userID uint, n int) error {
	if n <= 0 {
		return nil
	}

	activities := make([]*models.ActivityEntry, n)
	nutrition := make([]*models.NutritionEntry, n)
	sleep := make([]*models.SleepEntry, n)
	moods := make([]*models.MoodEntry, n)
	for i := 0; i < n; i++ {
		activities[i] = f.BuildActivity(userID)
		nutrition[i] = f.BuildNutrition(userID)
		sleep[i] = f.BuildSleep(userID)
		moods[i] = f.BuildMood(userID)
	}

	if err := f.db.Create(&activities).Error; err != nil {
		return err
	}
	if err := f.db.Create(&nutrition).Error; err != nil {
		return err
	}
	if err := f.db.Create(&sleep).Error; err != nil {
		return err
	}
	return f.db.Create(&moods).Error
}

// clearData deletes seeded rows. Entries go first so the user delete never
// trips foreign keys on databases without cascading constraints.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.ActivityEntry{},
		&models.NutritionEntry{},
		&models.SleepEntry{},
		&models.MoodEntry{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
