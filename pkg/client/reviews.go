package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ReviewCreateInput is a new review payload
type ReviewCreateInput struct {
	BusinessUser int64  `json:"business_user"`
	Rating       int    `json:"rating"`
	Description  string `json:"description"`
}

// ReviewListParams narrows a review listing
type ReviewListParams struct {
	BusinessUserID *int64
	ReviewerID     *int64
	Ordering       string
}

// CreateReview adds a review for a business user
func (c *Client) CreateReview(ctx context.Context, input ReviewCreateInput) (*Review, error) {
	var rv Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews/", nil, input, &rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

// ListReviews retrieves reviews matching the params
func (c *Client) ListReviews(ctx context.Context, params ReviewListParams) ([]Review, error) {
	q := url.Values{}
	if params.BusinessUserID != nil {
		q.Set("business_user_id", strconv.FormatInt(*params.BusinessUserID, 10))
	}
	if params.ReviewerID != nil {
		q.Set("reviewer_id", strconv.FormatInt(*params.ReviewerID, 10))
	}
	if params.Ordering != "" {
		q.Set("ordering", params.Ordering)
	}

	var reviews []Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews/", q, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateReview patches rating/description of an own review
func (c *Client) UpdateReview(ctx context.Context, id int64, rating *int, description *string) (*Review, error) {
	body := map[string]interface{}{}
	if rating != nil {
		body["rating"] = *rating
	}
	if description != nil {
		body["description"] = *description
	}

	var rv Review
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/reviews/%d/", id), nil, body, &rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

// DeleteReview removes an own review
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d/", id), nil, nil, nil)
}
