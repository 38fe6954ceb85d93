package offer

import "context"

// Repository defines the interface for offer data access. Aggregate writes
// are transactional: either the offer, all its detail rows and the derived
// minimums are persisted, or nothing is.
type Repository interface {
	// CreateWithDetails persists the offer, its three details and the
	// recomputed minimums in one transaction
	CreateWithDetails(ctx context.Context, o *Offer, details []Detail) error

	// GetByID retrieves an offer with its details and owner info
	GetByID(ctx context.Context, id int64) (*Offer, error)

	// UpdateWithDetails persists edited offer scalars, the given detail
	// rows and the recomputed minimums in one transaction
	UpdateWithDetails(ctx context.Context, o *Offer, details []Detail) error

	// Delete removes an offer; details cascade
	Delete(ctx context.Context, id int64) error

	// List retrieves offers matching the filter, with details loaded
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Offer, int64, error)

	// GetDetail retrieves a single detail with its owner joined in
	GetDetail(ctx context.Context, id int64) (*Detail, error)
}
