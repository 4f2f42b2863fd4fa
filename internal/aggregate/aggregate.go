// Package aggregate reduces filtered entry sets into summary statistics.
// All functions are pure: they operate on slices the caller has already
// scoped to one account and, where relevant, one time window.
package aggregate

import (
	"wellspring/internal/models"
)

// NutritionTotals holds summed intake across a window. All fields are zero
// when the window has no entries; sums never divide by the entry count.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

// SumNutrition totals calories and macronutrients across the given entries.
func SumNutrition(entries []models.NutritionEntry) NutritionTotals {
	var t NutritionTotals
	for _, e := range entries {
		t.Calories += e.Calories
		t.ProteinG += e.ProteinG
		t.CarbsG += e.CarbsG
		t.FatsG += e.FatsG
	}
	return t
}

// AverageSleepHours returns the mean hours slept across the given entries.
// An empty slice yields exactly 0, never NaN or an error.
func AverageSleepHours(entries []models.SleepEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total / float64(len(entries))
}

// MoodFrequency builds a sparse frequency table mapping each observed rating
// to its occurrence count. Ratings that never occur are absent from the map.
func MoodFrequency(entries []models.MoodEntry) map[int]int {
	freq := make(map[int]int, len(entries))
	for _, e := range entries {
		freq[e.Rating]++
	}
	return freq
}

// Summary is the dashboard roll-up computed over an account's entire history.
type Summary struct {
	AverageSleepHours float64     `json:"average_sleep_hours"`
	TotalCalories     float64     `json:"total_calories"`
	MoodFrequency     map[int]int `json:"mood_frequency"`
}

// Summarize reduces full-history sleep, nutrition, and mood entries into the
// dashboard summary.
func Summarize(sleep []models.SleepEntry, nutrition []models.NutritionEntry, moods []models.MoodEntry) Summary {
	return Summary{
		AverageSleepHours: AverageSleepHours(sleep),
		TotalCalories:     SumNutrition(nutrition).Calories,
		MoodFrequency:     MoodFrequency(moods),
	}
}
