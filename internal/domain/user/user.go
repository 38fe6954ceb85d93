package user

import "time"

// User represents an account in the marketplace
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Role         string    `json:"type"`
	IsStaff      bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Account roles. A role is fixed at registration; there is no transition
// logic anywhere in the system.
const (
	RoleCustomer = "customer"
	RoleBusiness = "business"
)

// ValidRole reports whether role is one of the two account roles
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleBusiness
}
