package service

import (
	"context"
	"time"

	"wellspring/internal/cache"
	"wellspring/internal/models"
	"wellspring/internal/observability"
	"wellspring/internal/period"
	"wellspring/internal/repository"
)

// TrackerService logs and lists the four entry kinds. Every method takes the
// authenticated user's id; by-id deletes verify ownership and report a
// mismatch as NotFound so the existence of other users' entries never leaks.
type TrackerService struct {
	activityRepo  repository.ActivityRepository
	nutritionRepo repository.NutritionRepository
	sleepRepo     repository.SleepRepository
	moodRepo      repository.MoodRepository
}

// NewTrackerService returns a new TrackerService over the four entry repositories.
func NewTrackerService(
	activityRepo repository.ActivityRepository,
	nutritionRepo repository.NutritionRepository,
	sleepRepo repository.SleepRepository,
	moodRepo repository.MoodRepository,
) *TrackerService {
	return &TrackerService{
		activityRepo:  activityRepo,
		nutritionRepo: nutritionRepo,
		sleepRepo:     sleepRepo,
		moodRepo:      moodRepo,
	}
}

// LogActivityInput carries the fields for one activity entry. A nil
// OccurredAt defaults to the creation time.
type LogActivityInput struct {
	Type            models.ActivityType
	Steps           int
	DistanceKM      float64
	Calories        float64
	DurationMinutes int
	OccurredAt      *time.Time
}

func (s *TrackerService) LogActivity(ctx context.Context, userID uint, in LogActivityInput) (*models.ActivityEntry, error) {
	occurredAt := time.Now().UTC()
	if in.OccurredAt != nil {
		occurredAt = in.OccurredAt.UTC()
	}

	entry := &models.ActivityEntry{
		UserID:          userID,
		Type:            in.Type,
		Steps:           in.Steps,
		DistanceKM:      in.DistanceKM,
		Calories:        in.Calories,
		DurationMinutes: in.DurationMinutes,
		OccurredAt:      occurredAt,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	observability.EntriesLogged.WithLabelValues("activity").Inc()
	cache.InvalidateDashboard(ctx, userID)
	return entry, nil
}

// ListActivities returns the user's activity entries inside the window the
// period token resolves to, using the caller-supplied now.
func (s *TrackerService) ListActivities(ctx context.Context, userID uint, token string, now time.Time) ([]models.ActivityEntry, error) {
	w, err := period.Resolve(token, now)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.activityRepo.ListByUserAndRange(ctx, userID, w.Start, w.End)
}

func (s *TrackerService) DeleteActivity(ctx context.Context, userID, id uint) error {
	entry, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return models.NewNotFoundError("Activity entry", id)
	}
	if err := s.activityRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID)
	return nil
}

// LogNutritionInput carries the fields for one nutrition entry. A nil
// OccurredOn defaults to the creation date.
type LogNutritionInput struct {
	Calories   float64
	ProteinG   float64
	CarbsG     float64
	FatsG      float64
	OccurredOn *time.Time
}

func (s *TrackerService) LogNutrition(ctx context.Context, userID uint, in LogNutritionInput) (*models.NutritionEntry, error) {
	occurredOn := time.Now().UTC()
	if in.OccurredOn != nil {
		occurredOn = in.OccurredOn.UTC()
	}

	entry := &models.NutritionEntry{
		UserID:     userID,
		Calories:   in.Calories,
		ProteinG:   in.ProteinG,
		CarbsG:     in.CarbsG,
		FatsG:      in.FatsG,
		OccurredOn: occurredOn,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.nutritionRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	observability.EntriesLogged.WithLabelValues("nutrition").Inc()
	cache.InvalidateDashboard(ctx, userID)
	return entry, nil
}

func (s *TrackerService) ListNutrition(ctx context.Context, userID uint, token string, now time.Time) ([]models.NutritionEntry, error) {
	w, err := period.Resolve(token, now)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.nutritionRepo.ListByUserAndRange(ctx, userID, w.Start, w.End)
}

func (s *TrackerService) DeleteNutrition(ctx context.Context, userID, id uint) error {
	entry, err := s.nutritionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return models.NewNotFoundError("Nutrition entry", id)
	}
	if err := s.nutritionRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID)
	return nil
}

// LogSleepInput carries the fields for one sleep entry. A nil OccurredOn
// defaults to the creation date.
type LogSleepInput struct {
	Hours      float64
	Quality    models.SleepQuality
	OccurredOn *time.Time
}

func (s *TrackerService) LogSleep(ctx context.Context, userID uint, in LogSleepInput) (*models.SleepEntry, error) {
	occurredOn := time.Now().UTC()
	if in.OccurredOn != nil {
		occurredOn = in.OccurredOn.UTC()
	}

	entry := &models.SleepEntry{
		UserID:     userID,
		Hours:      in.Hours,
		Quality:    in.Quality,
		OccurredOn: occurredOn,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.sleepRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	observability.EntriesLogged.WithLabelValues("sleep").Inc()
	cache.InvalidateDashboard(ctx, userID)
	return entry, nil
}

func (s *TrackerService) ListSleep(ctx context.Context, userID uint, token string, now time.Time) ([]models.SleepEntry, error) {
	w, err := period.Resolve(token, now)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.sleepRepo.ListByUserAndRange(ctx, userID, w.Start, w.End)
}

func (s *TrackerService) DeleteSleep(ctx context.Context, userID, id uint) error {
	entry, err := s.sleepRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return models.NewNotFoundError("Sleep entry", id)
	}
	if err := s.sleepRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID)
	return nil
}

// LogMoodInput carries the fields for one mood entry. A nil OccurredOn
// defaults to the creation date.
type LogMoodInput struct {
	Rating     int
	Notes      string
	OccurredOn *time.Time
}

func (s *TrackerService) LogMood(ctx context.Context, userID uint, in LogMoodInput) (*models.MoodEntry, error) {
	occurredOn := time.Now().UTC()
	if in.OccurredOn != nil {
		occurredOn = in.OccurredOn.UTC()
	}

	entry := &models.MoodEntry{
		UserID:     userID,
		Rating:     in.Rating,
		Notes:      in.Notes,
		OccurredOn: occurredOn,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.moodRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	observability.EntriesLogged.WithLabelValues("mood").Inc()
	cache.InvalidateDashboard(ctx, userID)
	return entry, nil
}

func (s *TrackerService) ListMoods(ctx context.Context, userID uint, token string, now time.Time) ([]models.MoodEntry, error) {
	w, err := period.Resolve(token, now)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.moodRepo.ListByUserAndRange(ctx, userID, w.Start, w.End)
}

func (s *TrackerService) DeleteMood(ctx context.Context, userID, id uint) error {
	entry, err := s.moodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return models.NewNotFoundError("Mood entry", id)
	}
	if err := s.moodRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID)
	return nil
}
