package server

import (
	"time"

	"wellspring/internal/models"
	"wellspring/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LogActivityRequest is the payload for creating an activity entry.
type LogActivityRequest struct {
	Type            string  `json:"type"`
	Steps           int     `json:"steps"`
	DistanceKM      float64 `json:"distance_km"`
	Calories        float64 `json:"calories"`
	DurationMinutes int     `json:"duration_minutes"`
	OccurredAt      string  `json:"occurred_at"`
}

// LogActivity creates an activity entry for the authenticated user
func (s *Server) LogActivity(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req LogActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	occurredAt, err := parseOccurred(req.OccurredAt)
	if err != nil {
		return fail(c, err)
	}

	entry, err := s.trackerService.LogActivity(c.UserContext(), userID, service.LogActivityInput{
		Type:            models.ActivityType(req.Type),
		Steps:           req.Steps,
		DistanceKM:      req.DistanceKM,
		Calories:        req.Calories,
		DurationMinutes: req.DurationMinutes,
		OccurredAt:      occurredAt,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListActivities returns activity entries inside the requested period window
func (s *Server) ListActivities(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	entries, err := s.trackerService.ListActivities(
		c.UserContext(), userID, c.Query("period"), time.Now().UTC())
	if err != nil {
		return fail(c, err)
	}
	if entries == nil {
		entries = []models.ActivityEntry{}
	}
	return c.JSON(entries)
}

// DeleteActivity removes one of the authenticated user's activity entries
func (s *Server) DeleteActivity(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := s.trackerService.DeleteActivity(c.UserContext(), userID, id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LogNutritionRequest is the payload for creating a nutrition entry.
type LogNutritionRequest struct {
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatsG      float64 `json:"fats_g"`
	OccurredOn string  `json:"occurred_on"`
}

// LogNutrition creates a nutrition entry for the authenticated user
func (s *Server) LogNutrition(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req LogNutritionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	occurredOn, err := parseOccurred(req.OccurredOn)
	if err != nil {
		return fail(c, err)
	}

	entry, err := s.trackerService.LogNutrition(c.UserContext(), userID, service.LogNutritionInput{
		Calories:   req.Calories,
		ProteinG:   req.ProteinG,
		CarbsG:     req.CarbsG,
		FatsG:      req.FatsG,
		OccurredOn: occurredOn,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListNutrition returns nutrition entries inside the requested period window
func (s *Server) ListNutrition(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	entries, err := s.trackerService.ListNutrition(
		c.UserContext(), userID, c.Query("period"), time.Now().UTC())
	if err != nil {
		return fail(c, err)
	}
	if entries == nil {
		entries = []models.NutritionEntry{}
	}
	return c.JSON(entries)
}

// DeleteNutrition removes one of the authenticated user's nutrition entries
func (s *Server) DeleteNutrition(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := s.trackerService.DeleteNutrition(c.UserContext(), userID, id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LogSleepRequest is the payload for creating a sleep entry.
type LogSleepRequest struct {
	Hours      float64 `json:"hours"`
	Quality    string  `json:"quality"`
	OccurredOn string  `json:"occurred_on"`
}

// LogSleep creates a sleep entry for the authenticated user
func (s *Server) LogSleep(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req LogSleepRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	occurredOn, err := parseOccurred(req.OccurredOn)
	if err != nil {
		return fail(c, err)
	}

	entry, err := s.trackerService.LogSleep(c.UserContext(), userID, service.LogSleepInput{
		Hours:      req.Hours,
		Quality:    models.SleepQuality(req.Quality),
		OccurredOn: occurredOn,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListSleep returns sleep entries inside the requested period window
func (s *Server) ListSleep(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	entries, err := s.trackerService.ListSleep(
		c.UserContext(), userID, c.Query("period"), time.Now().UTC())
	if err != nil {
		return fail(c, err)
	}
	if entries == nil {
		entries = []models.SleepEntry{}
	}
	return c.JSON(entries)
}

// DeleteSleep removes one of the authenticated user's sleep entries
func (s *Server) DeleteSleep(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := s.trackerService.DeleteSleep(c.UserContext(), userID, id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LogMoodRequest is the payload for creating a mood entry.
type LogMoodRequest struct {
	Rating     int    `json:"rating"`
	Notes      string `json:"notes"`
	OccurredOn string `json:"occurred_on"`
}

// LogMood creates a mood entry for the authenticated user
func (s *Server) LogMood(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req LogMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	occurredOn, err := parseOccurred(req.OccurredOn)
	if err != nil {
		return fail(c, err)
	}

	entry, err := s.trackerService.LogMood(c.UserContext(), userID, service.LogMoodInput{
		Rating:     req.Rating,
		Notes:      req.Notes,
		OccurredOn: occurredOn,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListMoods returns mood entries inside the requested period window
func (s *Server) ListMoods(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	entries, err := s.trackerService.ListMoods(
		c.UserContext(), userID, c.Query("period"), time.Now().UTC())
	if err != nil {
		return fail(c, err)
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	return c.JSON(entries)
}

// DeleteMood removes one of the authenticated user's mood entries
func (s *Server) DeleteMood(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := s.trackerService.DeleteMood(c.UserContext(), userID, id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
