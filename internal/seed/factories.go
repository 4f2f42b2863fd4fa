// Package seed creates demo accounts and entry histories for development
// and testing. Never run it against a production database.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"wellspring/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seedVal := opts.RandomSeed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	gofakeit.Seed(seedVal)
	return &Factory{
		db:   db,
		rng:  rand.New(rand.NewSource(seedVal)),
		opts: opts,
	}
}

// demoPasswordHash is computed once; bcrypt per user makes large seeds slow.
var demoPasswordHash []byte

func (f *Factory) passwordHash() (string, error) {
	if demoPasswordHash == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("DemoPass123"), bcrypt.MinCost)
		if err != nil {
			return "", err
		}
		demoPasswordHash = hash
	}
	return string(demoPasswordHash), nil
}

// BuildUser constructs a sample user without persisting it.
func (f *Factory) BuildUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := f.passwordHash()
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	dob := gofakeit.DateRange(
		time.Now().AddDate(-60, 0, 0),
		time.Now().AddDate(-18, 0, 0),
	)

	user := &models.User{
		Username:    gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:       gofakeit.Email(),
		Password:    hash,
		FirstName:   gofakeit.FirstName(),
		LastName:    gofakeit.LastName(),
		Bio:         gofakeit.Sentence(8),
		Location:    gofakeit.City(),
		DateOfBirth: &dob,
	}
	for _, override := range overrides {
		override(user)
	}
	return user, nil
}

// CreateUser constructs and persists a sample user.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user, err := f.BuildUser(overrides...)
	if err != nil {
		return nil, err
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// occurredAt spreads entries over the configured history window.
func (f *Factory) occurredAt() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	minsBack := f.rng.Intn(24 * 60)
	return time.Now().UTC().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)
}

var activityTypes = []models.ActivityType{
	models.ActivityWalking,
	models.ActivityRunning,
	models.ActivityCycling,
	models.ActivitySwimming,
	models.ActivityOther,
}

// BuildActivity constructs a plausible activity entry for the user.
func (f *Factory) BuildActivity(userID uint) *models.ActivityEntry {
	duration := gofakeit.Number(10, 180)
	return &models.ActivityEntry{
		UserID:          userID,
		Type:            activityTypes[f.rng.Intn(len(activityTypes))],
		Steps:           gofakeit.Number(0, 20000),
		DistanceKM:      gofakeit.Float64Range(0, 25),
		Calories:        gofakeit.Float64Range(50, 900),
		DurationMinutes: duration,
		OccurredAt:      f.occurredAt(),
	}
}

// BuildNutrition constructs a plausible nutrition entry for the user.
func (f *Factory) BuildNutrition(userID uint) *models.NutritionEntry {
	return &models.NutritionEntry{
		UserID:     userID,
		Calories:   gofakeit.Float64Range(150, 1200),
		ProteinG:   gofakeit.Float64Range(5, 80),
		CarbsG:     gofakeit.Float64Range(10, 150),
		FatsG:      gofakeit.Float64Range(2, 60),
		OccurredOn: f.occurredAt(),
	}
}

var sleepQualities = []models.SleepQuality{
	models.SleepPoor,
	models.SleepFair,
	models.SleepGood,
	models.SleepExcellent,
}

// BuildSleep constructs a plausible sleep entry for the user.
func (f *Factory) BuildSleep(userID uint) *models.SleepEntry {
	return &models.SleepEntry{
		UserID:     userID,
		Hours:      gofakeit.Float64Range(4, 10),
		Quality:    sleepQualities[f.rng.Intn(len(sleepQualities))],
		OccurredOn: f.occurredAt(),
	}
}

// BuildMood constructs a plausible mood entry for the user.
func (f *Factory) BuildMood(userID uint) *models.MoodEntry {
	entry := &models.MoodEntry{
		UserID:     userID,
		Rating:     gofakeit.Number(models.MoodRatingMin, models.MoodRatingMax),
		OccurredOn: f.occurredAt(),
	}
	if f.rng.Intn(2) == 0 {
		entry.Notes = gofakeit.Sentence(6)
	}
	return entry
}
