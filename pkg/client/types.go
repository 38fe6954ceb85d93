package client

import (
	"encoding/json"
	"time"
)

// AuthResponse is the response of registration and login
type AuthResponse struct {
	Token    string `json:"token"`
	Refresh  string `json:"refresh_token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   int64  `json:"user_id"`
}

// OfferDetail is one pricing tier
type OfferDetail struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// Offer is one offer as returned by the API. Details is raw JSON because
// the server returns either [{id,url}] links or full tier objects.
type Offer struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user"`
	Title           string          `json:"title"`
	Image           *string         `json:"image"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Details         json.RawMessage `json:"details"`
	MinPrice        *float64        `json:"min_price"`
	MinDeliveryTime *int            `json:"min_delivery_time"`
	UserDetails     struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Username  string `json:"username"`
	} `json:"user_details"`
}

// FullDetails decodes Details as complete tier objects; it fails when the
// server returned thin links
func (o *Offer) FullDetails() ([]OfferDetail, error) {
	var details []OfferDetail
	if err := json.Unmarshal(o.Details, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// OfferPage is a paginated offer listing
type OfferPage struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Offer `json:"results"`
}

// Order is one order snapshot
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

// Review is one review
type Review struct {
	ID             int64     `json:"id"`
	BusinessUserID int64     `json:"business_user"`
	ReviewerID     int64     `json:"reviewer"`
	Rating         int       `json:"rating"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BaseInfo is the public platform snapshot
type BaseInfo struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}

// Profile is one user profile
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
