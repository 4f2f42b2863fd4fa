package service

import (
	"context"
	"testing"
	"time"

	"wellspring/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardWith(activity *stubActivityRepo, nutrition *stubNutritionRepo, sleep *stubSleepRepo, mood *stubMoodRepo) *DashboardService {
	if activity == nil {
		activity = &stubActivityRepo{}
	}
	if nutrition == nil {
		nutrition = &stubNutritionRepo{}
	}
	if sleep == nil {
		sleep = &stubSleepRepo{}
	}
	if mood == nil {
		mood = &stubMoodRepo{}
	}
	return NewDashboardService(activity, nutrition, sleep, mood, nil)
}

func TestSummary_FullHistory(t *testing.T) {
	sleep := &stubSleepRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.SleepEntry, error) {
			return []models.SleepEntry{{Hours: 6}, {Hours: 8}}, nil
		},
	}
	nutrition := &stubNutritionRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.NutritionEntry, error) {
			return []models.NutritionEntry{{Calories: 1500}, {Calories: 2000}}, nil
		},
	}
	mood := &stubMoodRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.MoodEntry, error) {
			return []models.MoodEntry{{Rating: 5}, {Rating: 5}, {Rating: 8}}, nil
		},
	}
	svc := dashboardWith(nil, nutrition, sleep, mood)

	summary, err := svc.Summary(context.Background(), 7)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, summary.AverageSleepHours, 1e-9)
	assert.InDelta(t, 3500.0, summary.TotalCalories, 1e-9)
	assert.Equal(t, map[int]int{5: 2, 8: 1}, summary.MoodFrequency)
}

func TestSummary_EmptyHistory(t *testing.T) {
	sleep := &stubSleepRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.SleepEntry, error) { return nil, nil },
	}
	nutrition := &stubNutritionRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.NutritionEntry, error) { return nil, nil },
	}
	mood := &stubMoodRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.MoodEntry, error) { return nil, nil },
	}
	svc := dashboardWith(nil, nutrition, sleep, mood)

	summary, err := svc.Summary(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.AverageSleepHours)
	assert.Equal(t, 0.0, summary.TotalCalories)
	assert.Empty(t, summary.MoodFrequency)
}

func TestSummary_IgnoresWindow(t *testing.T) {
	// The summary path must never call the windowed queries.
	sleep := &stubSleepRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.SleepEntry, error) { return nil, nil },
		listByUserAndRange: func(_ context.Context, _ uint, _, _ time.Time) ([]models.SleepEntry, error) {
			t.Fatal("summary must not apply a window")
			return nil, nil
		},
	}
	nutrition := &stubNutritionRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.NutritionEntry, error) { return nil, nil },
	}
	mood := &stubMoodRepo{
		listByUser: func(_ context.Context, _ uint) ([]models.MoodEntry, error) { return nil, nil },
	}
	svc := dashboardWith(nil, nutrition, sleep, mood)

	_, err := svc.Summary(context.Background(), 7)
	require.NoError(t, err)
}

func TestWindowed_AggregatesPerKind(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	wantStart := now.AddDate(0, 0, -7)

	activity := &stubActivityRepo{
		listByUserAndRange: func(_ context.Context, _ uint, start, end time.Time) ([]models.ActivityEntry, error) {
			assert.Equal(t, wantStart, start)
			assert.Equal(t, now, end)
			return []models.ActivityEntry{{ID: 1, Type: models.ActivityRunning}}, nil
		},
	}
	nutrition := &stubNutritionRepo{
		listByUserAndRange: func(_ context.Context, _ uint, _, _ time.Time) ([]models.NutritionEntry, error) {
			return []models.NutritionEntry{{Calories: 400, ProteinG: 20}, {Calories: 600, ProteinG: 30}}, nil
		},
	}
	sleep := &stubSleepRepo{
		listByUserAndRange: func(_ context.Context, _ uint, _, _ time.Time) ([]models.SleepEntry, error) {
			return []models.SleepEntry{{Hours: 7}, {Hours: 9}}, nil
		},
	}
	mood := &stubMoodRepo{
		listByUserAndRange: func(_ context.Context, _ uint, _, _ time.Time) ([]models.MoodEntry, error) {
			return []models.MoodEntry{{Rating: 6}}, nil
		},
	}
	svc := dashboardWith(activity, nutrition, sleep, mood)

	data, err := svc.Windowed(context.Background(), 7, "weekly", now)
	require.NoError(t, err)

	assert.Equal(t, "weekly", data.Period)
	assert.Equal(t, wantStart, data.Start)
	assert.Equal(t, now, data.End)
	// Activities come back raw; the other kinds are reduced.
	require.Len(t, data.Activities, 1)
	assert.InDelta(t, 1000.0, data.Nutrition.Calories, 1e-9)
	assert.InDelta(t, 50.0, data.Nutrition.ProteinG, 1e-9)
	assert.InDelta(t, 8.0, data.AverageSleepHours, 1e-9)
	assert.Equal(t, map[int]int{6: 1}, data.MoodFrequency)
}

func TestWindowed_EmptyTokenDefaultsToDaily(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	empty := func() (*stubActivityRepo, *stubNutritionRepo, *stubSleepRepo, *stubMoodRepo) {
		return &stubActivityRepo{
				listByUserAndRange: func(_ context.Context, _ uint, start, _ time.Time) ([]models.ActivityEntry, error) {
					assert.Equal(t, now.AddDate(0, 0, -1), start)
					return nil, nil
				},
			}, &stubNutritionRepo{
				listByUserAndRange: func(_ context.Context, _ uint, _, _ time.Time) ([]models.NutritionEntry, error) {
					return nil, nil
				},
			}, &stubSleepRepo{
				listByUserAndRange: func(_ context.Context, _ uint, _, _ time.Time) ([]models.SleepEntry, error) {
					return nil, nil
				},
			}, &stubMoodRepo{
				listByUserAndRange: func(_ context.Context, _ uint, _, _ time.Time) ([]models.MoodEntry, error) {
					return nil, nil
				},
			}
	}

	svc := dashboardWith(empty())
	data, err := svc.Windowed(context.Background(), 7, "", now)
	require.NoError(t, err)
	assert.Equal(t, "daily", data.Period)
	assert.Equal(t, 0.0, data.AverageSleepHours)
	assert.Empty(t, data.MoodFrequency)
	assert.Zero(t, data.Nutrition.Calories)
}

func TestWindowed_RejectsUnknownPeriod(t *testing.T) {
	svc := dashboardWith(nil, nil, nil, nil)

	_, err := svc.Windowed(context.Background(), 7, "quarterly", time.Now())

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}
