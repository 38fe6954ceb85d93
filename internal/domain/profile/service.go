package profile

import (
	"context"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
)

// Service defines the interface for profile business logic
type Service interface {
	// Get retrieves a profile; only its owner may read it
	Get(ctx context.Context, caller auth.Identity, id int64) (*Profile, error)

	// Update applies a partial patch; only the owner may write
	Update(ctx context.Context, caller auth.Identity, id int64, input UpdateInput) (*Profile, error)

	// ListByRole retrieves all business or all customer profiles
	ListByRole(ctx context.Context, role string) ([]*Profile, error)
}
