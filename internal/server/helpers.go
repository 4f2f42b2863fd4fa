package server

import (
	"strconv"
	"time"

	"wellspring/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID reads the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) (uint, error) {
	uid, ok := c.Locals("userID").(uint)
	if !ok {
		return 0, models.NewUnauthorizedError("Authentication required")
	}
	return uid, nil
}

// parseID parses a positive numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// fail writes the standardized error body with the status the error maps to.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// parseOccurred parses an optional RFC 3339 timestamp from a request body
// field. Empty means "not supplied".
func parseOccurred(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// Date-only input is accepted for day-grained entries.
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, models.NewValidationError("Invalid timestamp, expected RFC 3339 or YYYY-MM-DD")
		}
	}
	return &t, nil
}
