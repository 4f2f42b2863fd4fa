package server

import (
	"wellspring/internal/middleware"
	"wellspring/internal/models"
	"wellspring/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest carries the optional profile fields. Absent fields
// leave the stored values untouched.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	DateOfBirth string `json:"date_of_birth"`
}

// GetMyProfile returns the authenticated user's profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	user, err := s.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile applies a partial profile update
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Invalid request body"))
	}

	dob, err := parseOccurred(req.DateOfBirth)
	if err != nil {
		return fail(c, err)
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Bio:         req.Bio,
		Location:    req.Location,
		DateOfBirth: dob,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// DeleteMyAccount removes the account and every entry it owns
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := s.userService.DeleteAccount(c.UserContext(), userID); err != nil {
		return fail(c, err)
	}

	// The account is gone; the token that authenticated this request must
	// not outlive it.
	s.revokeBearer(c)

	middleware.Logger.InfoContext(c.UserContext(), "account deleted", "user_id", userID)
	return c.SendStatus(fiber.StatusNoContent)
}
