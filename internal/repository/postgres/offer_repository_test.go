package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/repository/postgres"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

func createTestUser(t *testing.T, db *sql.DB, username, role string) *user.User {
	t.Helper()
	repo := postgres.NewUserRepository(db)
	u := &user.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

func testDetails() []offer.Detail {
	return []offer.Detail{
		{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 10, Features: []string{"logo"}, OfferType: offer.TypeBasic},
		{Title: "Standard", Revisions: 2, DeliveryTimeInDays: 5, Price: 20, Features: []string{"logo", "card"}, OfferType: offer.TypeStandard},
		{Title: "Premium", Revisions: 5, DeliveryTimeInDays: 3, Price: 30, Features: []string{}, OfferType: offer.TypePremium},
	}
}

func TestOfferRepositoryCreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "studio", user.RoleBusiness)
	repo := postgres.NewOfferRepository(db)

	o := &offer.Offer{UserID: owner.ID, Title: "Logo design", Description: "Packages"}
	if err := repo.CreateWithDetails(ctx, o, testDetails()); err != nil {
		t.Fatalf("CreateWithDetails() error = %v", err)
	}
	if o.ID == 0 {
		t.Fatal("CreateWithDetails() did not assign an ID")
	}

	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.MinPrice == nil || *got.MinPrice != 10 {
		t.Errorf("min_price = %v, want 10", got.MinPrice)
	}
	if got.MinDeliveryTime == nil || *got.MinDeliveryTime != 3 {
		t.Errorf("min_delivery_time = %v, want 3", got.MinDeliveryTime)
	}
	if len(got.Details) != 3 {
		t.Fatalf("details = %d, want 3", len(got.Details))
	}
	if got.UserDetails.Username != "studio" {
		t.Errorf("user_details.username = %q, want studio", got.UserDetails.Username)
	}
	for _, d := range got.Details {
		if d.Features == nil {
			t.Errorf("features of %s decoded as nil", d.OfferType)
		}
	}
}

func TestOfferRepositoryDuplicateTierRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "studio", user.RoleBusiness)
	repo := postgres.NewOfferRepository(db)

	details := testDetails()
	details[2].OfferType = offer.TypeBasic

	o := &offer.Offer{UserID: owner.ID, Title: "Broken"}
	err := repo.CreateWithDetails(ctx, o, details)
	if err == nil {
		t.Fatal("CreateWithDetails() with duplicate tier succeeded")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeValidation {
		t.Fatalf("error = %v, want validation error", err)
	}

	// Nothing must survive the rollback.
	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM offers").Scan(&count); err != nil {
		t.Fatalf("count offers: %v", err)
	}
	if count != 0 {
		t.Errorf("offers after rollback = %d, want 0", count)
	}
}

func TestOfferRepositoryUpdateRecomputesMins(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "studio", user.RoleBusiness)
	repo := postgres.NewOfferRepository(db)

	o := &offer.Offer{UserID: owner.ID, Title: "Logo design"}
	if err := repo.CreateWithDetails(ctx, o, testDetails()); err != nil {
		t.Fatalf("CreateWithDetails() error = %v", err)
	}

	details := o.Details
	for i := range details {
		if details[i].OfferType == offer.TypePremium {
			details[i].Price = 5
			details[i].DeliveryTimeInDays = 1
		}
	}
	if err := repo.UpdateWithDetails(ctx, o, details); err != nil {
		t.Fatalf("UpdateWithDetails() error = %v", err)
	}

	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.MinPrice == nil || *got.MinPrice != 5 {
		t.Errorf("min_price = %v, want 5", got.MinPrice)
	}
	if got.MinDeliveryTime == nil || *got.MinDeliveryTime != 1 {
		t.Errorf("min_delivery_time = %v, want 1", got.MinDeliveryTime)
	}
	if len(got.Details) != 3 {
		t.Errorf("details = %d, want 3", len(got.Details))
	}
}

func TestOfferRepositoryDeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "studio", user.RoleBusiness)
	repo := postgres.NewOfferRepository(db)

	o := &offer.Offer{UserID: owner.ID, Title: "Logo design"}
	if err := repo.CreateWithDetails(ctx, o, testDetails()); err != nil {
		t.Fatalf("CreateWithDetails() error = %v", err)
	}

	if err := repo.Delete(ctx, o.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM offer_details").Scan(&count); err != nil {
		t.Fatalf("count details: %v", err)
	}
	if count != 0 {
		t.Errorf("detail rows after delete = %d, want 0", count)
	}

	if _, err := repo.GetByID(ctx, o.ID); !apperrors.IsNotFound(err) {
		t.Errorf("GetByID() after delete = %v, want not found", err)
	}
}

func TestOfferRepositoryListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "studio", user.RoleBusiness)
	other := createTestUser(t, db, "agency", user.RoleBusiness)
	repo := postgres.NewOfferRepository(db)

	fast := &offer.Offer{UserID: owner.ID, Title: "Logo design", Description: "Clean logos"}
	if err := repo.CreateWithDetails(ctx, fast, testDetails()); err != nil {
		t.Fatalf("CreateWithDetails() error = %v", err)
	}

	slowDetails := testDetails()
	for i := range slowDetails {
		slowDetails[i].DeliveryTimeInDays = 20 + i
		slowDetails[i].Price = 100 + float64(i)
	}
	slow := &offer.Offer{UserID: other.ID, Title: "Full branding", Description: "Everything"}
	if err := repo.CreateWithDetails(ctx, slow, slowDetails); err != nil {
		t.Fatalf("CreateWithDetails() error = %v", err)
	}

	tests := []struct {
		name   string
		filter offer.Filter
		want   []string
	}{
		{
			name:   "no filter",
			filter: offer.Filter{},
			want:   []string{"Full branding", "Logo design"},
		},
		{
			name: "max delivery matches any tier",
			filter: offer.Filter{MaxDeliveryTime: func() *int {
				v := 7
				return &v
			}()},
			want: []string{"Logo design"},
		},
		{
			name: "min price against the aggregate",
			filter: offer.Filter{MinPrice: func() *float64 {
				v := 50.0
				return &v
			}()},
			want: []string{"Full branding"},
		},
		{
			name:   "creator filter",
			filter: offer.Filter{CreatorID: &owner.ID},
			want:   []string{"Logo design"},
		},
		{
			name:   "search in title",
			filter: offer.Filter{Search: "brand"},
			want:   []string{"Full branding"},
		},
		{
			name:   "ordering by min_price ascending",
			filter: offer.Filter{Ordering: "min_price"},
			want:   []string{"Logo design", "Full branding"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers, total, err := repo.List(ctx, tt.filter, 10, 0)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if total != int64(len(tt.want)) {
				t.Errorf("total = %d, want %d", total, len(tt.want))
			}
			if len(offers) != len(tt.want) {
				t.Fatalf("List() = %d offers, want %d", len(offers), len(tt.want))
			}
			for i, title := range tt.want {
				if offers[i].Title != title {
					t.Errorf("offers[%d] = %q, want %q", i, offers[i].Title, title)
				}
			}
		})
	}
}

func TestOfferRepositoryPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "studio", user.RoleBusiness)
	repo := postgres.NewOfferRepository(db)

	for i := 0; i < 8; i++ {
		o := &offer.Offer{UserID: owner.ID, Title: "Offer"}
		if err := repo.CreateWithDetails(ctx, o, testDetails()); err != nil {
			t.Fatalf("CreateWithDetails() error = %v", err)
		}
	}

	offers, total, err := repo.List(ctx, offer.Filter{}, 6, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 8 || len(offers) != 6 {
		t.Errorf("page 1 = %d of %d, want 6 of 8", len(offers), total)
	}

	offers, _, err = repo.List(ctx, offer.Filter{}, 6, 6)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(offers) != 2 {
		t.Errorf("page 2 = %d offers, want 2", len(offers))
	}
}

func TestOfferRepositoryGetDetailJoinsOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "studio", user.RoleBusiness)
	repo := postgres.NewOfferRepository(db)

	o := &offer.Offer{UserID: owner.ID, Title: "Logo design"}
	if err := repo.CreateWithDetails(ctx, o, testDetails()); err != nil {
		t.Fatalf("CreateWithDetails() error = %v", err)
	}

	d, err := repo.GetDetail(ctx, o.Details[1].ID)
	if err != nil {
		t.Fatalf("GetDetail() error = %v", err)
	}
	if d.OwnerID != owner.ID {
		t.Errorf("owner = %d, want %d", d.OwnerID, owner.ID)
	}
	if d.OfferType != offer.TypeStandard || d.Price != 20 {
		t.Errorf("detail = %s/%v, want standard/20", d.OfferType, d.Price)
	}

	if _, err := repo.GetDetail(ctx, 9999); !apperrors.IsNotFound(err) {
		t.Errorf("GetDetail(unknown) = %v, want not found", err)
	}
}
