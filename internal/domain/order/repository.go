package order

import "context"

// Repository defines the interface for order data access
type Repository interface {
	// Create persists a new order snapshot in one transaction
	Create(ctx context.Context, o *Order) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id int64) (*Order, error)

	// ListForUser retrieves orders where the user is the customer or the
	// business participant
	ListForUser(ctx context.Context, userID int64) ([]*Order, error)

	// UpdateStatus persists a status change
	UpdateStatus(ctx context.Context, id int64, status string) error

	// Delete removes an order
	Delete(ctx context.Context, id int64) error

	// CountForBusiness counts orders where the user is the business side,
	// optionally restricted to one status (empty string counts all)
	CountForBusiness(ctx context.Context, businessUserID int64, status string) (int64, error)
}
