package services

import (
	"context"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/domain/profile"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
)

// ProfileService implements profile.Service
type ProfileService struct {
	repo   profile.Repository
	logger *logger.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(repo profile.Repository, log *logger.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: log}
}

// Get retrieves a profile by ID. Reads are restricted to the owner.
func (s *ProfileService) Get(ctx context.Context, caller auth.Identity, id int64) (*profile.Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(p.UserID) {
		return nil, apperrors.Forbidden("you may only access your own profile")
	}
	return p, nil
}

// Update applies a partial patch to the caller's own profile. An email
// change propagates to the user row inside one transaction.
func (s *ProfileService) Update(ctx context.Context, caller auth.Identity, id int64, input profile.UpdateInput) (*profile.Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(p.UserID) {
		return nil, apperrors.Forbidden("you may only edit your own profile")
	}

	var emailChange *string
	if input.Email != nil && *input.Email != p.Email {
		inUse, err := s.repo.EmailInUse(ctx, *input.Email, p.UserID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, apperrors.ValidationError("email is already taken", map[string]interface{}{
				"email": "already in use",
			})
		}
		emailChange = input.Email
		p.Email = *input.Email
	}

	if input.FirstName != nil {
		p.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		p.LastName = *input.LastName
	}
	if input.File != nil {
		p.File = *input.File
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.Tel != nil {
		p.Tel = *input.Tel
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.WorkingHours != nil {
		p.WorkingHours = *input.WorkingHours
	}

	if err := s.repo.Update(ctx, p, emailChange); err != nil {
		return nil, err
	}

	s.logger.With("profile_id", p.ID).Info("profile updated")
	return p, nil
}

// ListByRole retrieves all profiles of one account type
func (s *ProfileService) ListByRole(ctx context.Context, role string) ([]*profile.Profile, error) {
	if !user.ValidRole(role) {
		return nil, apperrors.BadRequest("unknown profile type")
	}
	return s.repo.ListByRole(ctx, role)
}
