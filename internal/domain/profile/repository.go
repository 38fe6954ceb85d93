package profile

import "context"

// Repository defines the interface for profile data access
type Repository interface {
	// GetByID retrieves a profile by its own ID
	GetByID(ctx context.Context, id int64) (*Profile, error)

	// GetByUserID retrieves the profile belonging to a user
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)

	// Update persists edited profile fields. When email is non-nil the
	// owning user row's email changes in the same transaction so the
	// mirror never drifts from the account.
	Update(ctx context.Context, p *Profile, email *string) error

	// EmailInUse reports whether email belongs to any user other than
	// excludeUserID
	EmailInUse(ctx context.Context, email string, excludeUserID int64) (bool, error)

	// ListByRole retrieves all profiles whose user holds the given role
	ListByRole(ctx context.Context, role string) ([]*Profile, error)
}
