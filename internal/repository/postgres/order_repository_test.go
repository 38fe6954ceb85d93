package postgres_test

import (
	"context"
	"testing"

	"github.com/pratik-mahalle/gigmarket/internal/domain/order"
	"github.com/pratik-mahalle/gigmarket/internal/domain/review"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/repository/postgres"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

func TestOrderRepositoryLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	biz := createTestUser(t, db, "studio", user.RoleBusiness)
	cust := createTestUser(t, db, "shopper", user.RoleCustomer)
	repo := postgres.NewOrderRepository(db)

	o := &order.Order{
		CustomerUserID:     cust.ID,
		BusinessUserID:     biz.ID,
		OfferDetailID:      1,
		Title:              "Standard",
		Revisions:          2,
		DeliveryTimeInDays: 5,
		Price:              20,
		Features:           []string{"logo", "card"},
		OfferType:          "standard",
		Status:             order.StatusInProgress,
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Price != 20 || len(got.Features) != 2 {
		t.Errorf("snapshot = %v/%d features, want 20/2", got.Price, len(got.Features))
	}

	// Both participants see the order; a third party does not.
	for _, id := range []int64{cust.ID, biz.ID} {
		orders, err := repo.ListForUser(ctx, id)
		if err != nil {
			t.Fatalf("ListForUser(%d) error = %v", id, err)
		}
		if len(orders) != 1 {
			t.Errorf("ListForUser(%d) = %d orders, want 1", id, len(orders))
		}
	}
	orders, err := repo.ListForUser(ctx, 9999)
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("ListForUser(stranger) = %d orders, want 0", len(orders))
	}

	if err := repo.UpdateStatus(ctx, o.ID, order.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	got, _ = repo.GetByID(ctx, o.ID)
	if got.Status != order.StatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}

	count, err := repo.CountForBusiness(ctx, biz.ID, "")
	if err != nil {
		t.Fatalf("CountForBusiness() error = %v", err)
	}
	if count != 1 {
		t.Errorf("total count = %d, want 1", count)
	}
	count, _ = repo.CountForBusiness(ctx, biz.ID, order.StatusCompleted)
	if count != 1 {
		t.Errorf("completed count = %d, want 1", count)
	}
	count, _ = repo.CountForBusiness(ctx, biz.ID, order.StatusInProgress)
	if count != 0 {
		t.Errorf("in-progress count = %d, want 0", count)
	}

	if err := repo.Delete(ctx, o.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, o.ID); !apperrors.IsNotFound(err) {
		t.Errorf("second Delete() = %v, want not found", err)
	}
}

func TestReviewRepositoryUniquePair(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	biz := createTestUser(t, db, "studio", user.RoleBusiness)
	cust := createTestUser(t, db, "shopper", user.RoleCustomer)
	repo := postgres.NewReviewRepository(db)

	first := &review.Review{BusinessUserID: biz.ID, ReviewerID: cust.ID, Rating: 4, Description: "good"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	dup := &review.Review{BusinessUserID: biz.ID, ReviewerID: cust.ID, Rating: 1}
	err := repo.Create(ctx, dup)
	if err == nil {
		t.Fatal("duplicate Create() succeeded")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeValidation {
		t.Fatalf("duplicate error = %v, want validation error", err)
	}

	exists, err := repo.ExistsForPair(ctx, cust.ID, biz.ID)
	if err != nil {
		t.Fatalf("ExistsForPair() error = %v", err)
	}
	if !exists {
		t.Error("ExistsForPair() = false, want true")
	}

	// Deleting frees the pair.
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Create(ctx, dup); err != nil {
		t.Errorf("Create() after delete error = %v", err)
	}
}
