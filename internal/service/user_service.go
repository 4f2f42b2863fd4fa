package service

import (
	"context"
	"time"

	"wellspring/internal/models"
	"wellspring/internal/repository"
)

// UserService manages account profiles and deletion.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries optional profile fields; empty strings and nil
// dates leave the stored values untouched. Username and email are immutable
// and deliberately absent.
type UpdateProfileInput struct {
	UserID      uint
	FirstName   string
	LastName    string
	Bio         string
	Location    string
	DateOfBirth *time.Time
}

// NewUserService returns a new UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxNameLen = 100
	const maxBioLen = 500
	const maxLocationLen = 100

	if in.FirstName != "" {
		if len(in.FirstName) > maxNameLen {
			return nil, models.NewValidationError("First name too long (max 100 characters)")
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if len(in.LastName) > maxNameLen {
			return nil, models.NewValidationError("Last name too long (max 100 characters)")
		}
		user.LastName = in.LastName
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Location != "" {
		if len(in.Location) > maxLocationLen {
			return nil, models.NewValidationError("Location too long (max 100 characters)")
		}
		user.Location = in.Location
	}
	if in.DateOfBirth != nil {
		if in.DateOfBirth.After(time.Now()) {
			return nil, models.NewValidationError("Date of birth must be in the past")
		}
		user.DateOfBirth = in.DateOfBirth
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the account and everything it owns. The repository
// performs the cascade in one transaction.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.DeleteCascade(ctx, userID)
}
