package client

import (
	"context"
	"fmt"
	"net/http"
)

// CreateOrder snapshots the given pricing tier into a new order
func (c *Client) CreateOrder(ctx context.Context, offerDetailID int64) (*Order, error) {
	body := map[string]int64{"offer_detail_id": offerDetailID}
	var o Order
	if err := c.do(ctx, http.MethodPost, "/api/orders/", nil, body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders retrieves all orders the caller participates in
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder retrieves one order
func (c *Client) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d/", id), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus transitions an order to completed or cancelled
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (*Order, error) {
	body := map[string]string{"status": status}
	var o Order
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/", id), nil, body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOrder removes an order (staff only)
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/%d/", id), nil, nil, nil)
}

// OrderCount returns the total order count for a business user
func (c *Client) OrderCount(ctx context.Context, businessUserID int64) (int64, error) {
	var resp struct {
		OrderCount int64 `json:"order_count"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/order-count/%d/", businessUserID), nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.OrderCount, nil
}

// CompletedOrderCount returns the completed-order count for a business user
func (c *Client) CompletedOrderCount(ctx context.Context, businessUserID int64) (int64, error) {
	var resp struct {
		CompletedOrderCount int64 `json:"completed_order_count"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/completed-order-count/%d/", businessUserID), nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.CompletedOrderCount, nil
}
