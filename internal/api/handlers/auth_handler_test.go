package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pratik-mahalle/gigmarket/internal/config"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
	"github.com/pratik-mahalle/gigmarket/internal/services"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()

	repo := testutil.NewMockUserRepository()
	repo.Profiles = testutil.NewMockProfileRepository()
	svc := services.NewUserService(repo, logger.New(logger.Config{Level: "error", Format: "console"}), 4)
	return NewAuthHandler(svc, validator.New(), config.AuthConfig{
		JWTSecret:          "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	})
}

func TestAuthHandlerRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid registration",
			body:       `{"username": "anna", "email": "anna@example.com", "password": "secret123", "repeated_password": "secret123", "type": "customer"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "password mismatch",
			body:       `{"username": "anna", "email": "anna@example.com", "password": "secret123", "repeated_password": "other1234", "type": "customer"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad email",
			body:       `{"username": "anna", "email": "not-an-email", "password": "secret123", "repeated_password": "secret123", "type": "customer"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad type",
			body:       `{"username": "anna", "email": "anna@example.com", "password": "secret123", "repeated_password": "secret123", "type": "admin"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/registration", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				var resp struct {
					Token  string `json:"token"`
					UserID int64  `json:"user_id"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if resp.Token == "" || resp.UserID == 0 {
					t.Errorf("response missing token or user_id: %s", rec.Body.String())
				}
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	h := newAuthHandler(t)

	register := `{"username": "anna", "email": "anna@example.com", "password": "secret123", "repeated_password": "secret123", "type": "customer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/registration", strings.NewReader(register))
	rec := httptest.NewRecorder()
	h.Register(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("registration failed: %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username": "anna", "password": "secret123"}`))
	rec = httptest.NewRecorder()
	h.Login(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username": "anna", "password": "wrong"}`))
	rec = httptest.NewRecorder()
	h.Login(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401: %s", rec.Code, rec.Body.String())
	}
}
