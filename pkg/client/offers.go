package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// OfferDetailInput is one pricing tier payload
type OfferDetailInput struct {
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// OfferCreateInput is the offer creation payload; exactly one detail per
// tier basic/standard/premium is required
type OfferCreateInput struct {
	Title       string             `json:"title"`
	Image       *string            `json:"image,omitempty"`
	Description string             `json:"description"`
	Details     []OfferDetailInput `json:"details"`
}

// OfferListParams narrows and orders an offer listing
type OfferListParams struct {
	CreatorID       *int64
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          string
	Ordering        string
	Page            int
	PageSize        int
	FullDetails     bool
}

func (p OfferListParams) query() url.Values {
	q := url.Values{}
	if p.CreatorID != nil {
		q.Set("creator_id", strconv.FormatInt(*p.CreatorID, 10))
	}
	if p.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxDeliveryTime != nil {
		q.Set("max_delivery_time", strconv.Itoa(*p.MaxDeliveryTime))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Ordering != "" {
		q.Set("ordering", p.Ordering)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.FullDetails {
		q.Set("details", "full")
	}
	return q
}

// ListOffers retrieves a page of offers
func (c *Client) ListOffers(ctx context.Context, params OfferListParams) (*OfferPage, error) {
	var page OfferPage
	if err := c.do(ctx, http.MethodGet, "/api/offers/", params.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOffer retrieves one offer; full selects complete tier objects
func (c *Client) GetOffer(ctx context.Context, id int64, full bool) (*Offer, error) {
	q := url.Values{}
	if full {
		q.Set("details", "full")
	}
	var o Offer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/offers/%d/", id), q, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOffer creates an offer with its three pricing tiers
func (c *Client) CreateOffer(ctx context.Context, input OfferCreateInput) (*Offer, error) {
	var o Offer
	if err := c.do(ctx, http.MethodPost, "/api/offers/", nil, input, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOffer patches an offer; patch follows the API's partial-update shape
func (c *Client) UpdateOffer(ctx context.Context, id int64, patch interface{}) (*Offer, error) {
	var o Offer
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/offers/%d/", id), nil, patch, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOffer removes an offer
func (c *Client) DeleteOffer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/offers/%d/", id), nil, nil, nil)
}

// GetOfferDetail retrieves a single pricing tier
func (c *Client) GetOfferDetail(ctx context.Context, id int64) (*OfferDetail, error) {
	var d OfferDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/offerdetails/%d/", id), nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
