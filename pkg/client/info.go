package client

import (
	"context"
	"fmt"
	"net/http"
)

// GetBaseInfo retrieves the public platform snapshot
func (c *Client) GetBaseInfo(ctx context.Context) (*BaseInfo, error) {
	var info BaseInfo
	if err := c.do(ctx, http.MethodGet, "/api/base-info/", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetProfile retrieves the caller's own profile by profile ID
func (c *Client) GetProfile(ctx context.Context, id int64) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/profile/%d/", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile patches the caller's own profile
func (c *Client) UpdateProfile(ctx context.Context, id int64, patch interface{}) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/profile/%d/", id), nil, patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
