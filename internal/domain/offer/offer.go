package offer

import "time"

// Pricing tiers. Every offer owns exactly one detail per tier.
const (
	TypeBasic    = "basic"
	TypeStandard = "standard"
	TypePremium  = "premium"
)

// Types lists the fixed tier set in canonical order
var Types = []string{TypeBasic, TypeStandard, TypePremium}

// ValidType reports whether t names a pricing tier
func ValidType(t string) bool {
	return t == TypeBasic || t == TypeStandard || t == TypePremium
}

// Offer is the aggregate root: one offer plus exactly three pricing tiers.
// MinPrice and MinDeliveryTime are derived from the details and recomputed
// inside the same transaction as every detail mutation; they are nil when
// the offer has no details.
type Offer struct {
	ID              int64        `json:"id"`
	UserID          int64        `json:"user"`
	Title           string       `json:"title"`
	Image           *string      `json:"image"`
	Description     string       `json:"description"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	MinPrice        *float64     `json:"min_price"`
	MinDeliveryTime *int         `json:"min_delivery_time"`
	Details         []Detail     `json:"-"`
	UserDetails     OwnerDetails `json:"user_details"`
}

// OwnerDetails is the lightweight owner info embedded in offer payloads
type OwnerDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Detail is one pricing tier of an offer
type Detail struct {
	ID                 int64    `json:"id"`
	OfferID            int64    `json:"-"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`

	// OwnerID is the owning offer's user, joined in on single-detail
	// reads so order creation can check self-ordering without a second
	// round trip.
	OwnerID int64 `json:"-"`
}

// DetailInput is one tier payload on offer creation
type DetailInput struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              float64
	Features           []string
	OfferType          string
}

// DetailPatch is a partial per-tier update; nil fields keep the stored
// value. OfferType selects the existing row; a patch never creates one.
type DetailPatch struct {
	OfferType          string
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *float64
	Features           *[]string
}

// UpdateInput patches offer scalars and, optionally, details by tier
type UpdateInput struct {
	Title       *string
	Description *string
	Image       *string
	Details     []DetailPatch
}

// Filter narrows offer listings
type Filter struct {
	CreatorID *int64
	// MinPrice matches offers whose derived min_price is at least this
	MinPrice *float64
	// MaxDeliveryTime matches offers where ANY detail delivers within
	// the bound, not just the precomputed aggregate, so detail sets
	// changed since the last recompute still match.
	MaxDeliveryTime *int
	Search          string
	Ordering        string
}

// RecomputeMins derives the aggregate minimums from a detail set
func RecomputeMins(details []Detail) (minPrice *float64, minDelivery *int) {
	for i := range details {
		d := details[i]
		if minPrice == nil || d.Price < *minPrice {
			p := d.Price
			minPrice = &p
		}
		if minDelivery == nil || d.DeliveryTimeInDays < *minDelivery {
			t := d.DeliveryTimeInDays
			minDelivery = &t
		}
	}
	return minPrice, minDelivery
}
