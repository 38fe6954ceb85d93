package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/metrics"
)

// OfferService implements offer.Service
type OfferService struct {
	repo   offer.Repository
	logger *logger.Logger
}

// NewOfferService creates a new OfferService
func NewOfferService(repo offer.Repository, log *logger.Logger) *OfferService {
	return &OfferService{repo: repo, logger: log}
}

// Create validates the three-tier payload and persists the aggregate
func (s *OfferService) Create(ctx context.Context, caller auth.Identity, input offer.CreateInput) (*offer.Offer, error) {
	if !caller.HasRole(user.RoleBusiness) {
		return nil, apperrors.Forbidden("only business users may create offers")
	}

	if err := validateTierSet(input.Details); err != nil {
		return nil, err
	}

	details := make([]offer.Detail, len(input.Details))
	for i, in := range input.Details {
		if err := validateDetail(in, i); err != nil {
			return nil, err
		}
		details[i] = offer.Detail{
			Title:              strings.TrimSpace(in.Title),
			Revisions:          in.Revisions,
			DeliveryTimeInDays: in.DeliveryTimeInDays,
			Price:              in.Price,
			Features:           in.Features,
			OfferType:          in.OfferType,
		}
	}

	o := &offer.Offer{
		UserID:      caller.UserID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.repo.CreateWithDetails(ctx, o, details); err != nil {
		return nil, err
	}

	metrics.OffersCreated.Inc()
	s.logger.With("offer_id", o.ID).With("user_id", caller.UserID).Info("offer created")
	return o, nil
}

// validateTierSet checks the detail payloads cover exactly the three
// pricing tiers, once each
func validateTierSet(details []offer.DetailInput) error {
	if len(details) != len(offer.Types) {
		return apperrors.ValidationError("an offer requires exactly three details", map[string]interface{}{
			"details": fmt.Sprintf("expected %d details, got %d", len(offer.Types), len(details)),
		})
	}

	seen := make(map[string]bool, len(offer.Types))
	for _, d := range details {
		if !offer.ValidType(d.OfferType) {
			return apperrors.ValidationError("invalid offer_type", map[string]interface{}{
				"offer_type": fmt.Sprintf("unknown type %q", d.OfferType),
			})
		}
		if seen[d.OfferType] {
			return apperrors.ValidationError("duplicate offer_type in details", map[string]interface{}{
				"offer_type": fmt.Sprintf("type %q appears more than once", d.OfferType),
			})
		}
		seen[d.OfferType] = true
	}
	return nil
}

// validateDetail checks one tier payload; idx feeds the error details so
// clients can locate the offending entry
func validateDetail(d offer.DetailInput, idx int) error {
	fail := func(field, msg string) error {
		return apperrors.ValidationError("invalid offer detail", map[string]interface{}{
			fmt.Sprintf("details[%d].%s", idx, field): msg,
		})
	}

	if strings.TrimSpace(d.Title) == "" {
		return fail("title", "must not be empty")
	}
	if d.Revisions < 0 {
		return fail("revisions", "must not be negative")
	}
	if d.DeliveryTimeInDays < 0 {
		return fail("delivery_time_in_days", "must not be negative")
	}
	if d.Price < 0 {
		return fail("price", "must not be negative")
	}
	return nil
}

// Update patches offer scalars and merges per-tier detail patches. The
// tier partition is stable: a patch addresses an existing row by its
// offer_type and never creates or removes one.
func (s *OfferService) Update(ctx context.Context, caller auth.Identity, id int64, input offer.UpdateInput) (*offer.Offer, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(o.UserID) {
		return nil, apperrors.Forbidden("you may only edit your own offers")
	}

	if input.Title != nil {
		o.Title = *input.Title
	}
	if input.Description != nil {
		o.Description = *input.Description
	}
	if input.Image != nil {
		o.Image = input.Image
	}

	byType := make(map[string]*offer.Detail, len(o.Details))
	for i := range o.Details {
		byType[o.Details[i].OfferType] = &o.Details[i]
	}

	for _, patch := range input.Details {
		d, ok := byType[patch.OfferType]
		if !ok {
			return nil, apperrors.ValidationError(
				"no detail for this type — exactly one per type must be maintained",
				map[string]interface{}{"offer_type": patch.OfferType},
			)
		}
		if patch.Title != nil {
			if strings.TrimSpace(*patch.Title) == "" {
				return nil, apperrors.ValidationError("invalid offer detail", map[string]interface{}{
					"title": "must not be empty",
				})
			}
			d.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Revisions != nil {
			if *patch.Revisions < 0 {
				return nil, apperrors.ValidationError("invalid offer detail", map[string]interface{}{
					"revisions": "must not be negative",
				})
			}
			d.Revisions = *patch.Revisions
		}
		if patch.DeliveryTimeInDays != nil {
			if *patch.DeliveryTimeInDays < 0 {
				return nil, apperrors.ValidationError("invalid offer detail", map[string]interface{}{
					"delivery_time_in_days": "must not be negative",
				})
			}
			d.DeliveryTimeInDays = *patch.DeliveryTimeInDays
		}
		if patch.Price != nil {
			if *patch.Price < 0 {
				return nil, apperrors.ValidationError("invalid offer detail", map[string]interface{}{
					"price": "must not be negative",
				})
			}
			d.Price = *patch.Price
		}
		if patch.Features != nil {
			d.Features = *patch.Features
		}
	}

	if err := s.repo.UpdateWithDetails(ctx, o, o.Details); err != nil {
		return nil, err
	}

	s.logger.With("offer_id", o.ID).Info("offer updated")
	return o, nil
}

// Delete removes the caller's own offer
func (s *OfferService) Delete(ctx context.Context, caller auth.Identity, id int64) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.Owns(o.UserID) {
		return apperrors.Forbidden("you may only delete your own offers")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.With("offer_id", id).Info("offer deleted")
	return nil
}

// Get retrieves one offer with details
func (s *OfferService) Get(ctx context.Context, id int64) (*offer.Offer, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves offers matching the filter
func (s *OfferService) List(ctx context.Context, filter offer.Filter, limit, offset int) ([]*offer.Offer, int64, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

// GetDetail retrieves a single pricing tier
func (s *OfferService) GetDetail(ctx context.Context, id int64) (*offer.Detail, error) {
	return s.repo.GetDetail(ctx, id)
}
