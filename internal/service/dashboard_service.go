package service

import (
	"context"
	"time"

	"wellspring/internal/aggregate"
	"wellspring/internal/cache"
	"wellspring/internal/featureflags"
	"wellspring/internal/models"
	"wellspring/internal/observability"
	"wellspring/internal/period"
	"wellspring/internal/repository"
)

// DashboardService serves the two read paths of the dashboard: the
// full-history summary and the period-windowed data. They are deliberately
// separate; the summary never applies a window and the windowed path never
// reads outside its window.
type DashboardService struct {
	activityRepo  repository.ActivityRepository
	nutritionRepo repository.NutritionRepository
	sleepRepo     repository.SleepRepository
	moodRepo      repository.MoodRepository
	flags         *featureflags.Manager
}

// NewDashboardService returns a new DashboardService over the four entry
// repositories. flags may be nil, which disables flag-gated behavior.
func NewDashboardService(
	activityRepo repository.ActivityRepository,
	nutritionRepo repository.NutritionRepository,
	sleepRepo repository.SleepRepository,
	moodRepo repository.MoodRepository,
	flags *featureflags.Manager,
) *DashboardService {
	return &DashboardService{
		activityRepo:  activityRepo,
		nutritionRepo: nutritionRepo,
		sleepRepo:     sleepRepo,
		moodRepo:      moodRepo,
		flags:         flags,
	}
}

// WindowedData is the aggregation of one account's entries inside a resolved
// period window. Activities are returned raw; the other kinds are reduced.
type WindowedData struct {
	Period            string                    `json:"period"`
	Start             time.Time                 `json:"start"`
	End               time.Time                 `json:"end"`
	Activities        []models.ActivityEntry    `json:"activities"`
	Nutrition         aggregate.NutritionTotals `json:"nutrition"`
	AverageSleepHours float64                   `json:"average_sleep_hours"`
	MoodFrequency     map[int]int               `json:"mood_frequency"`
}

// Summary computes the dashboard roll-up over the account's entire history.
// When the dashboard_cache flag is on the result is cached briefly; entry
// writes invalidate it.
func (s *DashboardService) Summary(ctx context.Context, userID uint) (*aggregate.Summary, error) {
	start := time.Now()
	defer observability.ObserveAggregation("summary", start)

	var summary aggregate.Summary
	load := func() error {
		sleep, err := s.sleepRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		nutrition, err := s.nutritionRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		moods, err := s.moodRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		summary = aggregate.Summarize(sleep, nutrition, moods)
		return nil
	}

	if !s.flags.Enabled("dashboard_cache", userID) {
		if err := load(); err != nil {
			return nil, err
		}
		return &summary, nil
	}

	err := cache.Aside(ctx, cache.DashboardKey(userID), &summary, cache.DashboardTTL, load)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Windowed resolves the period token against the caller-supplied now and
// reduces each entry kind over the resulting window.
func (s *DashboardService) Windowed(ctx context.Context, userID uint, token string, now time.Time) (*WindowedData, error) {
	start := time.Now()
	defer observability.ObserveAggregation("windowed", start)

	w, err := period.Resolve(token, now)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	activities, err := s.activityRepo.ListByUserAndRange(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	nutrition, err := s.nutritionRepo.ListByUserAndRange(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	sleep, err := s.sleepRepo.ListByUserAndRange(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	moods, err := s.moodRepo.ListByUserAndRange(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	resolved := token
	if resolved == "" {
		resolved = period.Daily
	}
	if activities == nil {
		activities = []models.ActivityEntry{}
	}

	return &WindowedData{
		Period:            resolved,
		Start:             w.Start,
		End:               w.End,
		Activities:        activities,
		Nutrition:         aggregate.SumNutrition(nutrition),
		AverageSleepHours: aggregate.AverageSleepHours(sleep),
		MoodFrequency:     aggregate.MoodFrequency(moods),
	}, nil
}
