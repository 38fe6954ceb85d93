package dto

import (
	"fmt"
	"time"

	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
)

// OfferDetailRequest is one pricing tier in an offer payload. Features is
// decoded loosely so non-string entries can be reported by index instead
// of failing the whole JSON decode.
type OfferDetailRequest struct {
	Title              *string       `json:"title"`
	Revisions          *int          `json:"revisions"`
	DeliveryTimeInDays *int          `json:"delivery_time_in_days"`
	Price              *float64      `json:"price"`
	Features           []interface{} `json:"features"`
	OfferType          string        `json:"offer_type"`
}

// featureStrings checks every features entry is a string and returns the
// converted list; offending indices are collected into one error.
func (r OfferDetailRequest) featureStrings() ([]string, error) {
	var bad []int
	features := make([]string, 0, len(r.Features))
	for i, f := range r.Features {
		s, ok := f.(string)
		if !ok {
			bad = append(bad, i)
			continue
		}
		features = append(features, s)
	}
	if len(bad) > 0 {
		return nil, apperrors.ValidationError("features must be a list of strings", map[string]interface{}{
			"features": fmt.Sprintf("non-string entries at indices %v", bad),
		})
	}
	return features, nil
}

// OfferCreateRequest is the full offer creation payload
type OfferCreateRequest struct {
	Title       string               `json:"title" validate:"required,max=255"`
	Image       *string              `json:"image"`
	Description string               `json:"description"`
	Details     []OfferDetailRequest `json:"details" validate:"required"`
}

// ToInput converts the request into the service-layer input. Each detail
// must be complete on creation.
func (r OfferCreateRequest) ToInput() (offer.CreateInput, error) {
	details := make([]offer.DetailInput, len(r.Details))
	for i, d := range r.Details {
		missing := func(field string) (offer.CreateInput, error) {
			return offer.CreateInput{}, apperrors.ValidationError("incomplete offer detail", map[string]interface{}{
				fmt.Sprintf("details[%d].%s", i, field): "is required",
			})
		}
		if d.Title == nil {
			return missing("title")
		}
		if d.Revisions == nil {
			return missing("revisions")
		}
		if d.DeliveryTimeInDays == nil {
			return missing("delivery_time_in_days")
		}
		if d.Price == nil {
			return missing("price")
		}

		features, err := d.featureStrings()
		if err != nil {
			return offer.CreateInput{}, err
		}
		details[i] = offer.DetailInput{
			Title:              *d.Title,
			Revisions:          *d.Revisions,
			DeliveryTimeInDays: *d.DeliveryTimeInDays,
			Price:              *d.Price,
			Features:           features,
			OfferType:          d.OfferType,
		}
	}

	return offer.CreateInput{
		Title:       r.Title,
		Image:       r.Image,
		Description: r.Description,
		Details:     details,
	}, nil
}

// OfferUpdateRequest is a partial offer patch
type OfferUpdateRequest struct {
	Title       *string              `json:"title" validate:"omitempty,max=255"`
	Image       *string              `json:"image"`
	Description *string              `json:"description"`
	Details     []OfferDetailRequest `json:"details"`
}

// ToInput converts the patch into the service-layer input; detail fields
// stay nil when absent so the service merges instead of overwriting
func (r OfferUpdateRequest) ToInput() (offer.UpdateInput, error) {
	// An absent details key means "leave the tiers alone"; a present but
	// empty list is a malformed patch.
	if r.Details != nil && len(r.Details) == 0 {
		return offer.UpdateInput{}, apperrors.ValidationError("details must be a non-empty list", map[string]interface{}{
			"details": "must contain at least one tier patch",
		})
	}

	patches := make([]offer.DetailPatch, len(r.Details))
	for i, d := range r.Details {
		patch := offer.DetailPatch{
			OfferType:          d.OfferType,
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
		}
		if d.Features != nil {
			features, err := d.featureStrings()
			if err != nil {
				return offer.UpdateInput{}, err
			}
			patch.Features = &features
		}
		patches[i] = patch
	}

	return offer.UpdateInput{
		Title:       r.Title,
		Image:       r.Image,
		Description: r.Description,
		Details:     patches,
	}, nil
}

// DetailLink is the thin detail representation used on offer reads
type DetailLink struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// OfferResponse is one offer in API payloads. Details carries either thin
// links or the full tier objects depending on the requested representation.
type OfferResponse struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"user"`
	Title           string             `json:"title"`
	Image           *string            `json:"image"`
	Description     string             `json:"description"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Details         interface{}        `json:"details"`
	MinPrice        *float64           `json:"min_price"`
	MinDeliveryTime *int               `json:"min_delivery_time"`
	UserDetails     offer.OwnerDetails `json:"user_details"`
}

// NewOfferResponse shapes an offer for the API. With full=false the
// details collapse to [{id,url}] links.
func NewOfferResponse(o *offer.Offer, full bool) OfferResponse {
	resp := OfferResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Title:           o.Title,
		Image:           o.Image,
		Description:     o.Description,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		MinPrice:        o.MinPrice,
		MinDeliveryTime: o.MinDeliveryTime,
		UserDetails:     o.UserDetails,
	}

	if full {
		resp.Details = o.Details
		return resp
	}

	links := make([]DetailLink, len(o.Details))
	for i, d := range o.Details {
		links[i] = DetailLink{ID: d.ID, URL: fmt.Sprintf("/api/offerdetails/%d/", d.ID)}
	}
	resp.Details = links
	return resp
}

// NewOfferResponses shapes a page of offers
func NewOfferResponses(offers []*offer.Offer, full bool) []OfferResponse {
	responses := make([]OfferResponse, len(offers))
	for i, o := range offers {
		responses[i] = NewOfferResponse(o, full)
	}
	return responses
}
