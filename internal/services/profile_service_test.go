package services

import (
	"context"
	"testing"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/domain/profile"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

func seedProfiles(repo *testutil.MockProfileRepository) {
	repo.Seed(&profile.Profile{ID: 1, UserID: 10, Username: "anna", Type: user.RoleCustomer, Email: "anna@example.com"})
	repo.Seed(&profile.Profile{ID: 2, UserID: 20, Username: "bob", Type: user.RoleBusiness, Email: "bob@example.com"})
}

func TestProfileServiceGetOwnerOnly(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	seedProfiles(repo)
	svc := NewProfileService(repo, newTestLogger())

	owner := auth.Identity{UserID: 10, Role: user.RoleCustomer}
	stranger := auth.Identity{UserID: 20, Role: user.RoleBusiness}

	p, err := svc.Get(context.Background(), owner, 1)
	if err != nil {
		t.Fatalf("Get() by owner: %v", err)
	}
	if p.Username != "anna" {
		t.Errorf("Username = %q, want anna", p.Username)
	}

	_, err = svc.Get(context.Background(), stranger, 1)
	assertAppError(t, err, apperrors.ErrCodeForbidden)

	_, err = svc.Get(context.Background(), owner, 99)
	assertAppError(t, err, apperrors.ErrCodeNotFound)
}

func TestProfileServiceUpdate(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	seedProfiles(repo)
	svc := NewProfileService(repo, newTestLogger())
	owner := auth.Identity{UserID: 10, Role: user.RoleCustomer}

	location := "Berlin"
	p, err := svc.Update(context.Background(), owner, 1, profile.UpdateInput{Location: &location})
	if err != nil {
		t.Fatalf("Update(): %v", err)
	}
	if p.Location != "Berlin" {
		t.Errorf("Location = %q, want Berlin", p.Location)
	}
	if p.Email != "anna@example.com" {
		t.Errorf("Email changed unexpectedly: %q", p.Email)
	}

	// patching someone else's profile is forbidden
	_, err = svc.Update(context.Background(), owner, 2, profile.UpdateInput{Location: &location})
	assertAppError(t, err, apperrors.ErrCodeForbidden)
}

func TestProfileServiceUpdateEmailUniqueness(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	seedProfiles(repo)
	svc := NewProfileService(repo, newTestLogger())
	owner := auth.Identity{UserID: 10, Role: user.RoleCustomer}

	taken := "bob@example.com"
	_, err := svc.Update(context.Background(), owner, 1, profile.UpdateInput{Email: &taken})
	assertAppError(t, err, apperrors.ErrCodeValidation)

	// changing to a fresh address works, setting the same address is a no-op
	fresh := "anna.new@example.com"
	p, err := svc.Update(context.Background(), owner, 1, profile.UpdateInput{Email: &fresh})
	if err != nil {
		t.Fatalf("Update() with fresh email: %v", err)
	}
	if p.Email != fresh {
		t.Errorf("Email = %q, want %q", p.Email, fresh)
	}
}

func TestProfileServiceListByRole(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	seedProfiles(repo)
	svc := NewProfileService(repo, newTestLogger())

	business, err := svc.ListByRole(context.Background(), user.RoleBusiness)
	if err != nil {
		t.Fatalf("ListByRole(business): %v", err)
	}
	if len(business) != 1 || business[0].Username != "bob" {
		t.Errorf("ListByRole(business) = %v, want [bob]", business)
	}

	_, err = svc.ListByRole(context.Background(), "admin")
	assertAppError(t, err, apperrors.ErrCodeBadRequest)
}
