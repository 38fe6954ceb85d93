package auth

// Identity is the authenticated caller as seen by the service layer.
// Permission predicates are evaluated against it instead of re-reading
// request metadata in every operation.
type Identity struct {
	UserID  int64
	Email   string
	Role    string
	IsStaff bool
}

// HasRole reports whether the caller holds the given account role
func (i Identity) HasRole(role string) bool {
	return i.Role == role
}

// Owns reports whether the caller owns the entity identified by ownerID
func (i Identity) Owns(ownerID int64) bool {
	return i.UserID == ownerID
}
