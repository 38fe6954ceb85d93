package order

import "time"

// Order statuses. An order starts in progress and moves forward exactly
// once, to completed or cancelled; terminal orders never transition again.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s names an order status
func ValidStatus(s string) bool {
	return s == StatusInProgress || s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the from→to status change is legal
func CanTransition(from, to string) bool {
	return from == StatusInProgress && (to == StatusCompleted || to == StatusCancelled)
}

// Order is a point-in-time snapshot of a pricing tier. The tier fields are
// copied verbatim at creation and never re-synced; later edits to the
// source detail do not propagate here.
type Order struct {
	ID                 int64     `json:"id"`
	CustomerUserID     int64     `json:"customer_user"`
	BusinessUserID     int64     `json:"business_user"`
	OfferDetailID      int64     `json:"offer_detail_id"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              float64   `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
