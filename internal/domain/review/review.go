package review

import "time"

// Review is one rating+comment a reviewer left for a business user. At most
// one exists per (reviewer, business) pair, enforced both by a pre-check
// and by the store's unique constraint.
type Review struct {
	ID             int64     `json:"id"`
	BusinessUserID int64     `json:"business_user"`
	ReviewerID     int64     `json:"reviewer"`
	Rating         int       `json:"rating"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Filter narrows review listings
type Filter struct {
	BusinessUserID *int64
	ReviewerID     *int64
	Ordering       string
}
