package client

import (
	"context"
	"net/http"
)

// RegisterInput is the sign-up payload
type RegisterInput struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeated_password"`
	Type           string `json:"type"`
}

// Register creates a new account and stores the returned token on the
// client
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/registration/", nil, input, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Login authenticates and stores the returned token on the client
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login/", nil, body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}
