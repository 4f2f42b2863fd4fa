package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound", NewNotFoundError("User", 7), fiber.StatusNotFound},
		{"Validation", NewValidationError("bad input"), fiber.StatusBadRequest},
		{"Conflict", NewConflictError("Username already exists"), fiber.StatusConflict},
		{"Unauthorized", NewUnauthorizedError("no token"), fiber.StatusUnauthorized},
		{"AuthFailed", NewAuthFailedError(), fiber.StatusUnauthorized},
		{"Forbidden", NewForbiddenError("nope"), fiber.StatusForbidden},
		{"Internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"Plain Error", errors.New("boom"), fiber.StatusInternalServerError},
		{"Wrapped AppError", fmt.Errorf("outer: %w", NewNotFoundError("User", 1)), fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestAuthFailedErrorIsUniform(t *testing.T) {
	t.Parallel()
	// Unknown email and wrong password must be indistinguishable.
	a := NewAuthFailedError()
	b := NewAuthFailedError()
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, a.Code, b.Code)
	assert.NotContains(t, a.Message, "email not found")
	assert.NotContains(t, a.Message, "wrong password")
}

func TestAppErrorUnwrap(t *testing.T) {
	t.Parallel()
	inner := errors.New("driver failure")
	appErr := NewInternalError(inner)

	assert.ErrorIs(t, appErr, inner)
	assert.Contains(t, appErr.Error(), "driver failure")
}
