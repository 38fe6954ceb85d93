package services

import (
	"context"
	"testing"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/domain/review"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

func newReviewService(t *testing.T) (*ReviewService, *testutil.MockUserRepository) {
	t.Helper()
	users := testutil.NewMockUserRepository()
	users.Seed(&user.User{ID: 1, Username: "biz", Role: user.RoleBusiness})
	users.Seed(&user.User{ID: 2, Username: "cust", Role: user.RoleCustomer})
	return NewReviewService(testutil.NewMockReviewRepository(), users, newTestLogger()), users
}

func TestReviewServiceCreate(t *testing.T) {
	customer := auth.Identity{UserID: 2, Role: user.RoleCustomer}

	tests := []struct {
		name     string
		caller   auth.Identity
		input    review.CreateInput
		wantCode string
	}{
		{
			name:   "valid review",
			caller: customer,
			input:  review.CreateInput{BusinessUserID: 1, Rating: 4, Description: "solid work"},
		},
		{
			name:     "business caller forbidden",
			caller:   auth.Identity{UserID: 1, Role: user.RoleBusiness},
			input:    review.CreateInput{BusinessUserID: 1, Rating: 4},
			wantCode: apperrors.ErrCodeForbidden,
		},
		{
			name:     "self review rejected",
			caller:   auth.Identity{UserID: 1, Role: user.RoleCustomer},
			input:    review.CreateInput{BusinessUserID: 1, Rating: 4},
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "rating out of range",
			caller:   customer,
			input:    review.CreateInput{BusinessUserID: 1, Rating: 6},
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "target is not a business",
			caller:   auth.Identity{UserID: 3, Role: user.RoleCustomer},
			input:    review.CreateInput{BusinessUserID: 2, Rating: 3},
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "unknown target",
			caller:   customer,
			input:    review.CreateInput{BusinessUserID: 999, Rating: 3},
			wantCode: apperrors.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newReviewService(t)

			rv, err := svc.Create(context.Background(), tt.caller, tt.input)
			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if rv.ReviewerID != tt.caller.UserID {
				t.Errorf("reviewer = %d, want %d", rv.ReviewerID, tt.caller.UserID)
			}
		})
	}
}

func TestReviewServiceOnePerPair(t *testing.T) {
	svc, users := newReviewService(t)
	users.Seed(&user.User{ID: 3, Username: "biz2", Role: user.RoleBusiness})
	customer := auth.Identity{UserID: 2, Role: user.RoleCustomer}

	if _, err := svc.Create(context.Background(), customer, review.CreateInput{BusinessUserID: 1, Rating: 5}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	// A second review for the same business fails.
	_, err := svc.Create(context.Background(), customer, review.CreateInput{BusinessUserID: 1, Rating: 1})
	assertAppError(t, err, apperrors.ErrCodeValidation)

	// A different business is fine.
	if _, err := svc.Create(context.Background(), customer, review.CreateInput{BusinessUserID: 3, Rating: 4}); err != nil {
		t.Errorf("Create() for second business error = %v", err)
	}
}

func TestReviewServiceUpdateDelete(t *testing.T) {
	svc, _ := newReviewService(t)
	customer := auth.Identity{UserID: 2, Role: user.RoleCustomer}

	created, err := svc.Create(context.Background(), customer, review.CreateInput{BusinessUserID: 1, Rating: 3, Description: "ok"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stranger := auth.Identity{UserID: 5, Role: user.RoleCustomer}
	rating := 5

	_, err = svc.Update(context.Background(), stranger, created.ID, review.UpdateInput{Rating: &rating})
	assertAppError(t, err, apperrors.ErrCodeForbidden)

	updated, err := svc.Update(context.Background(), customer, created.ID, review.UpdateInput{Rating: &rating})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Rating != 5 {
		t.Errorf("rating = %d, want 5", updated.Rating)
	}
	if updated.Description != "ok" {
		t.Errorf("description = %q, untouched fields must survive the patch", updated.Description)
	}

	bad := 0
	_, err = svc.Update(context.Background(), customer, created.ID, review.UpdateInput{Rating: &bad})
	assertAppError(t, err, apperrors.ErrCodeValidation)

	err = svc.Delete(context.Background(), stranger, created.ID)
	assertAppError(t, err, apperrors.ErrCodeForbidden)

	if err := svc.Delete(context.Background(), customer, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Deleting frees the pair for a new review.
	if _, err := svc.Create(context.Background(), customer, review.CreateInput{BusinessUserID: 1, Rating: 2}); err != nil {
		t.Errorf("Create() after delete error = %v", err)
	}
}

func TestReviewServiceListFilter(t *testing.T) {
	svc, users := newReviewService(t)
	users.Seed(&user.User{ID: 3, Username: "biz2", Role: user.RoleBusiness})

	if _, err := svc.Create(context.Background(), auth.Identity{UserID: 2, Role: user.RoleCustomer},
		review.CreateInput{BusinessUserID: 1, Rating: 5}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(context.Background(), auth.Identity{UserID: 2, Role: user.RoleCustomer},
		review.CreateInput{BusinessUserID: 3, Rating: 2}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	biz := int64(1)
	reviews, err := svc.List(context.Background(), review.Filter{BusinessUserID: &biz})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(reviews) != 1 || reviews[0].BusinessUserID != 1 {
		t.Errorf("List(business_user_id=1) = %d reviews", len(reviews))
	}

	reviewer := int64(2)
	reviews, err = svc.List(context.Background(), review.Filter{ReviewerID: &reviewer})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(reviews) != 2 {
		t.Errorf("List(reviewer_id=2) = %d reviews, want 2", len(reviews))
	}
}
