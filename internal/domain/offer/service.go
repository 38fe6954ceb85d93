package offer

import (
	"context"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
)

// CreateInput carries a new offer with its three tier payloads
type CreateInput struct {
	Title       string
	Description string
	Image       *string
	Details     []DetailInput
}

// Service defines the interface for offer business logic
type Service interface {
	// Create validates the three-tier payload and persists the aggregate
	// atomically; only business users may create
	Create(ctx context.Context, caller auth.Identity, input CreateInput) (*Offer, error)

	// Update patches offer scalars and merges per-tier detail patches;
	// only the owner may update
	Update(ctx context.Context, caller auth.Identity, id int64, input UpdateInput) (*Offer, error)

	// Delete removes an offer; only its creator may delete
	Delete(ctx context.Context, caller auth.Identity, id int64) error

	// Get retrieves one offer
	Get(ctx context.Context, id int64) (*Offer, error)

	// List retrieves offers matching the filter
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Offer, int64, error)

	// GetDetail retrieves a single pricing tier
	GetDetail(ctx context.Context, id int64) (*Detail, error)
}
