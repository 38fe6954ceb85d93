package info

import "context"

// BaseInfo is the public platform snapshot. AverageRating is 0, not null,
// when no reviews exist.
type BaseInfo struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}

// Repository defines the read-only aggregation queries
type Repository interface {
	// Stats collects the platform counters in one snapshot
	Stats(ctx context.Context) (*BaseInfo, error)
}

// Service defines the interface for base-info reads
type Service interface {
	// Stats returns the platform snapshot with the average rating
	// rounded to two decimals
	Stats(ctx context.Context) (*BaseInfo, error)
}
