// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"

	"wellspring/internal/models"
	"wellspring/internal/repository"
	"wellspring/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies credentials and creates accounts. Registration
// enforces username and email uniqueness; authentication never reveals
// whether the email or the password was wrong.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService returns a new AuthService backed by the given repository.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new account. Username and email are checked for
// collisions independently; either one is a Conflict and nothing is written.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Username already exists")
	}

	existing, err = s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	}

	// Concurrent registrations racing past the checks above are caught by the
	// unique constraints and surface as the same Conflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair. An unknown email and a wrong
// password return the identical error so accounts cannot be enumerated.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewAuthFailedError()
	}

	// bcrypt recomputes the hash with the stored salt and compares in
	// constant time.
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewAuthFailedError()
	}
	return user, nil
}
