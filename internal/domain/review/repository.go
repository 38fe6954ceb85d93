package review

import "context"

// Repository defines the interface for review data access
type Repository interface {
	// Create persists a new review
	Create(ctx context.Context, r *Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id int64) (*Review, error)

	// Update persists rating/description edits
	Update(ctx context.Context, r *Review) error

	// Delete removes a review
	Delete(ctx context.Context, id int64) error

	// List retrieves reviews matching the filter
	List(ctx context.Context, filter Filter) ([]*Review, error)

	// ExistsForPair reports whether the reviewer already reviewed the
	// business user
	ExistsForPair(ctx context.Context, reviewerID, businessUserID int64) (bool, error)
}
