package services

import (
	"context"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	"github.com/pratik-mahalle/gigmarket/internal/domain/order"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/metrics"
)

// OrderService implements order.Service
type OrderService struct {
	repo      order.Repository
	offerRepo offer.Repository
	userRepo  user.Repository
	logger    *logger.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(repo order.Repository, offerRepo offer.Repository, userRepo user.Repository, log *logger.Logger) *OrderService {
	return &OrderService{repo: repo, offerRepo: offerRepo, userRepo: userRepo, logger: log}
}

// Create snapshots the given pricing tier into a new order
func (s *OrderService) Create(ctx context.Context, caller auth.Identity, offerDetailID int64) (*order.Order, error) {
	if !caller.HasRole(user.RoleCustomer) {
		return nil, apperrors.Forbidden("only customers may place orders")
	}

	detail, err := s.offerRepo.GetDetail(ctx, offerDetailID)
	if err != nil {
		return nil, err
	}

	if caller.Owns(detail.OwnerID) {
		return nil, apperrors.ValidationError("you may not order your own offer", map[string]interface{}{
			"offer_detail_id": "belongs to one of your own offers",
		})
	}

	o := &order.Order{
		CustomerUserID:     caller.UserID,
		BusinessUserID:     detail.OwnerID,
		OfferDetailID:      detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           detail.Features,
		OfferType:          detail.OfferType,
		Status:             order.StatusInProgress,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.WithLabelValues(o.OfferType).Inc()
	s.logger.With("order_id", o.ID).With("customer_user", o.CustomerUserID).Info("order created")
	return o, nil
}

// Get retrieves one order; only its participants may read it
func (s *OrderService) Get(ctx context.Context, caller auth.Identity, id int64) (*order.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(o.CustomerUserID) && !caller.Owns(o.BusinessUserID) {
		return nil, apperrors.Forbidden("you are not a participant in this order")
	}
	return o, nil
}

// List retrieves all orders the caller participates in
func (s *OrderService) List(ctx context.Context, caller auth.Identity) ([]*order.Order, error) {
	return s.repo.ListForUser(ctx, caller.UserID)
}

// UpdateStatus transitions an order forward; only the business participant
// may transition, and only out of in_progress
func (s *OrderService) UpdateStatus(ctx context.Context, caller auth.Identity, id int64, status string) (*order.Order, error) {
	if !order.ValidStatus(status) {
		return nil, apperrors.ValidationError("invalid status", map[string]interface{}{
			"status": "must be in_progress, completed or cancelled",
		})
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.Owns(o.CustomerUserID) && !caller.Owns(o.BusinessUserID) {
		return nil, apperrors.Forbidden("you are not a participant in this order")
	}

	// A participant asking for an impossible transition learns that before
	// any permission verdict: re-transitioning a terminal order is a 400
	// even for the customer.
	if !order.CanTransition(o.Status, status) {
		return nil, apperrors.ValidationError("illegal status transition", map[string]interface{}{
			"status": "orders only move from in_progress to completed or cancelled",
		})
	}

	if !caller.HasRole(user.RoleBusiness) || !caller.Owns(o.BusinessUserID) {
		return nil, apperrors.Forbidden("only the business participant may update the order status")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	o.Status = status
	metrics.OrderTransitions.WithLabelValues(status).Inc()
	s.logger.With("order_id", id).With("status", status).Info("order status updated")
	return o, nil
}

// Delete removes an order; restricted to staff callers
func (s *OrderService) Delete(ctx context.Context, caller auth.Identity, id int64) error {
	if !caller.IsStaff {
		return apperrors.Forbidden("only staff may delete orders")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.With("order_id", id).Info("order deleted")
	return nil
}

// CountForBusiness returns the total order count for a business user,
// regardless of status
func (s *OrderService) CountForBusiness(ctx context.Context, businessUserID int64) (int64, error) {
	if err := s.requireUser(ctx, businessUserID); err != nil {
		return 0, err
	}
	return s.repo.CountForBusiness(ctx, businessUserID, "")
}

// CountCompletedForBusiness returns the completed-order count for a
// business user
func (s *OrderService) CountCompletedForBusiness(ctx context.Context, businessUserID int64) (int64, error) {
	if err := s.requireUser(ctx, businessUserID); err != nil {
		return 0, err
	}
	return s.repo.CountForBusiness(ctx, businessUserID, order.StatusCompleted)
}

// requireUser fails with NotFound when no account has the given ID. The
// count endpoints only verify existence; an ID that belongs to a customer
// simply counts zero orders.
func (s *OrderService) requireUser(ctx context.Context, id int64) error {
	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("business user")
	}
	return nil
}
