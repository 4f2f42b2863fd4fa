package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardSummary returns the full-history roll-up for the authenticated
// user. No period applies here; the windowed read path is GetDashboardData.
func (s *Server) GetDashboardSummary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	summary, err := s.dashboardService.Summary(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// GetDashboardData returns per-kind aggregates over the window the period
// query parameter resolves to (daily when absent).
func (s *Server) GetDashboardData(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	data, err := s.dashboardService.Windowed(
		c.UserContext(), userID, c.Query("period"), time.Now().UTC())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(data)
}
