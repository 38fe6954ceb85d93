package user

import "context"

// Repository defines the interface for user data access
type Repository interface {
	// Create creates a user together with its profile mirror in one
	// transaction. The mirror copies username/email/role at creation time.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Exists reports whether a user with the given ID exists
	Exists(ctx context.Context, id int64) (bool, error)

	// UpdateEmail changes a user's email address
	UpdateEmail(ctx context.Context, id int64, email string) error
}
