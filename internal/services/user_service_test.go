package services

import (
	"context"
	"testing"

	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "console"})
}

func TestUserServiceRegister(t *testing.T) {
	tests := []struct {
		name     string
		input    user.RegisterInput
		wantCode string
	}{
		{
			name:  "valid customer",
			input: user.RegisterInput{Username: "anna", Email: "anna@example.com", Password: "secret123", Role: user.RoleCustomer},
		},
		{
			name:  "valid business",
			input: user.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "secret123", Role: user.RoleBusiness},
		},
		{
			name:     "invalid role",
			input:    user.RegisterInput{Username: "carl", Email: "carl@example.com", Password: "secret123", Role: "admin"},
			wantCode: apperrors.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockUserRepository()
			repo.Profiles = testutil.NewMockProfileRepository()
			svc := NewUserService(repo, newTestLogger(), 4)

			u, err := svc.Register(context.Background(), tt.input)
			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if u.ID == 0 {
				t.Error("Register() did not assign an ID")
			}
			if u.PasswordHash == tt.input.Password {
				t.Error("Register() stored the plain password")
			}

			// The profile mirror must exist right after registration.
			p, err := repo.Profiles.GetByUserID(context.Background(), u.ID)
			if err != nil {
				t.Fatalf("profile mirror missing: %v", err)
			}
			if p.Username != tt.input.Username || p.Type != tt.input.Role {
				t.Errorf("profile mirror = %q/%q, want %q/%q", p.Username, p.Type, tt.input.Username, tt.input.Role)
			}
		})
	}
}

func TestUserServiceRegisterDuplicateUsername(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewUserService(repo, newTestLogger(), 4)

	input := user.RegisterInput{Username: "anna", Email: "anna@example.com", Password: "secret123", Role: user.RoleCustomer}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	input.Email = "other@example.com"
	_, err := svc.Register(context.Background(), input)
	assertAppError(t, err, apperrors.ErrCodeValidation)
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := NewUserService(repo, newTestLogger(), 4)

	if _, err := svc.Register(context.Background(), user.RegisterInput{
		Username: "anna", Email: "anna@example.com", Password: "secret123", Role: user.RoleCustomer,
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "correct credentials", username: "anna", password: "secret123"},
		{name: "wrong password", username: "anna", password: "wrong", wantErr: true},
		{name: "unknown user", username: "ghost", password: "secret123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr {
				assertAppError(t, err, apperrors.ErrCodeUnauthorized)
				return
			}
			if err != nil {
				t.Fatalf("Authenticate() error = %v", err)
			}
			if u.Username != tt.username {
				t.Errorf("Authenticate() username = %q, want %q", u.Username, tt.username)
			}
		})
	}
}

// assertAppError fails the test unless err is an *AppError with the given code
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Fatalf("error code = %s, want %s", appErr.Code, code)
	}
}
