package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/gigmarket/internal/api/dto"
	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/config"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/utils"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	users     user.Service
	validator *validator.Validator
	authCfg   config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users user.Service, v *validator.Validator, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{users: users, validator: v, authCfg: authCfg}
}

// Register handles POST /api/registration/
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegistrationRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	u, err := h.users.Register(r.Context(), user.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Type,
	})
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	pair, err := h.mintTokens(u)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, dto.NewAuthResponse(pair, u.ID, u.Username, u.Email))
}

// Login handles POST /api/login/
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	pair, err := h.mintTokens(u)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.NewAuthResponse(pair, u.ID, u.Username, u.Email))
}

func (h *AuthHandler) mintTokens(u *user.User) (auth.TokenPair, error) {
	return auth.MintTokens(u.ID, u.Email, u.Role, u.IsStaff,
		h.authCfg.JWTSecret, h.authCfg.AccessTokenExpiry, h.authCfg.RefreshTokenExpiry)
}
