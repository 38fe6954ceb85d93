package dto

import "github.com/pratik-mahalle/gigmarket/internal/auth"

// RegistrationRequest is the sign-up payload
type RegistrationRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=150"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	RepeatPassword string `json:"repeated_password" validate:"required,eqfield=Password"`
	Type           string `json:"type" validate:"required,oneof=customer business"`
}

// LoginRequest is the credential payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse returns the token pair together with basic account info
type AuthResponse struct {
	Token    string `json:"token"`
	Refresh  string `json:"refresh_token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   int64  `json:"user_id"`
}

// NewAuthResponse builds an AuthResponse from minted tokens
func NewAuthResponse(pair auth.TokenPair, userID int64, username, email string) AuthResponse {
	return AuthResponse{
		Token:    pair.AccessToken,
		Refresh:  pair.RefreshToken,
		Username: username,
		Email:    email,
		UserID:   userID,
	}
}
