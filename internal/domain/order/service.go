package order

import (
	"context"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
)

// Service defines the interface for order business logic
type Service interface {
	// Create snapshots the given pricing tier into a new order; only
	// customers may order, and never against their own offer
	Create(ctx context.Context, caller auth.Identity, offerDetailID int64) (*Order, error)

	// Get retrieves one order; only its participants may read it
	Get(ctx context.Context, caller auth.Identity, id int64) (*Order, error)

	// List retrieves all orders the caller participates in
	List(ctx context.Context, caller auth.Identity) ([]*Order, error)

	// UpdateStatus transitions an order forward; only the business
	// participant may transition, and only out of in_progress
	UpdateStatus(ctx context.Context, caller auth.Identity, id int64, status string) (*Order, error)

	// Delete removes an order; restricted to staff callers
	Delete(ctx context.Context, caller auth.Identity, id int64) error

	// CountForBusiness returns the order count for a business user
	CountForBusiness(ctx context.Context, businessUserID int64) (int64, error)

	// CountCompletedForBusiness returns the completed-order count for a
	// business user
	CountCompletedForBusiness(ctx context.Context, businessUserID int64) (int64, error)
}
