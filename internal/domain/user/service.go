package user

import "context"

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Service defines the interface for account business logic
type Service interface {
	// Register creates a new account and its profile mirror
	Register(ctx context.Context, input RegisterInput) (*User, error)

	// Authenticate verifies username/password credentials
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)
}
