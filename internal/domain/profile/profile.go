package profile

import "time"

// Profile is the denormalized mirror of a user's identity fields plus the
// fields the user edits independently afterwards. Exactly one exists per
// user; it is created inside the registration transaction.
type Profile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateInput carries a partial profile patch; nil fields are left alone
type UpdateInput struct {
	FirstName    *string
	LastName     *string
	File         *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
	Email        *string
}
