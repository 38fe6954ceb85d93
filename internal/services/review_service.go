package services

import (
	"context"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/domain/review"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/metrics"
)

// ReviewService implements review.Service
type ReviewService struct {
	repo     review.Repository
	userRepo user.Repository
	logger   *logger.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(repo review.Repository, userRepo user.Repository, log *logger.Logger) *ReviewService {
	return &ReviewService{repo: repo, userRepo: userRepo, logger: log}
}

// Create adds a review for a business user
func (s *ReviewService) Create(ctx context.Context, caller auth.Identity, input review.CreateInput) (*review.Review, error) {
	if caller.HasRole(user.RoleBusiness) {
		return nil, apperrors.Forbidden("business users may not write reviews")
	}
	if caller.Owns(input.BusinessUserID) {
		return nil, apperrors.ValidationError("you may not review yourself", map[string]interface{}{
			"business_user": "cannot equal the reviewer",
		})
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.ValidationError("invalid rating", map[string]interface{}{
			"rating": "must be between 1 and 5",
		})
	}

	target, err := s.userRepo.GetByID(ctx, input.BusinessUserID)
	if err != nil {
		return nil, err
	}
	if target.Role != user.RoleBusiness {
		return nil, apperrors.ValidationError("reviews can only target business users", map[string]interface{}{
			"business_user": "not a business account",
		})
	}

	exists, err := s.repo.ExistsForPair(ctx, caller.UserID, input.BusinessUserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ValidationError("you have already reviewed this business user", nil)
	}

	rv := &review.Review{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     caller.UserID,
		Rating:         input.Rating,
		Description:    input.Description,
	}
	// The unique pair constraint catches races the pre-check missed.
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	metrics.ReviewsCreated.Inc()
	s.logger.With("review_id", rv.ID).With("business_user", rv.BusinessUserID).Info("review created")
	return rv, nil
}

// Update edits rating/description; only the original reviewer may
func (s *ReviewService) Update(ctx context.Context, caller auth.Identity, id int64, input review.UpdateInput) (*review.Review, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(rv.ReviewerID) {
		return nil, apperrors.Forbidden("you may only edit your own reviews")
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, apperrors.ValidationError("invalid rating", map[string]interface{}{
				"rating": "must be between 1 and 5",
			})
		}
		rv.Rating = *input.Rating
	}
	if input.Description != nil {
		rv.Description = *input.Description
	}

	if err := s.repo.Update(ctx, rv); err != nil {
		return nil, err
	}

	s.logger.With("review_id", rv.ID).Info("review updated")
	return rv, nil
}

// Delete removes a review; only the original reviewer may
func (s *ReviewService) Delete(ctx context.Context, caller auth.Identity, id int64) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.Owns(rv.ReviewerID) {
		return apperrors.Forbidden("you may only delete your own reviews")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.With("review_id", id).Info("review deleted")
	return nil
}

// List retrieves reviews matching the filter
func (s *ReviewService) List(ctx context.Context, filter review.Filter) ([]*review.Review, error) {
	return s.repo.List(ctx, filter)
}
