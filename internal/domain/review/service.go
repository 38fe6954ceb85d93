package review

import (
	"context"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
)

// CreateInput carries a new review payload
type CreateInput struct {
	BusinessUserID int64
	Rating         int
	Description    string
}

// UpdateInput carries a partial review patch
type UpdateInput struct {
	Rating      *int
	Description *string
}

// Service defines the interface for review business logic
type Service interface {
	// Create adds a review; the caller must not be a business user, may
	// not review themselves, and may review each business at most once
	Create(ctx context.Context, caller auth.Identity, input CreateInput) (*Review, error)

	// Update edits rating/description; only the original reviewer may
	Update(ctx context.Context, caller auth.Identity, id int64, input UpdateInput) (*Review, error)

	// Delete removes a review; only the original reviewer may
	Delete(ctx context.Context, caller auth.Identity, id int64) error

	// List retrieves reviews; read access is open
	List(ctx context.Context, filter Filter) ([]*Review, error)
}
