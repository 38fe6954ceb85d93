package services

import (
	"context"
	"testing"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

var businessCaller = auth.Identity{UserID: 1, Role: user.RoleBusiness}

func threeTiers() []offer.DetailInput {
	return []offer.DetailInput{
		{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 10, Features: []string{"logo"}, OfferType: offer.TypeBasic},
		{Title: "Standard", Revisions: 2, DeliveryTimeInDays: 5, Price: 20, Features: []string{"logo", "card"}, OfferType: offer.TypeStandard},
		{Title: "Premium", Revisions: 5, DeliveryTimeInDays: 3, Price: 30, Features: []string{"logo", "card", "flyer"}, OfferType: offer.TypePremium},
	}
}

func TestOfferServiceCreateTierSet(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]offer.DetailInput) []offer.DetailInput
		wantErr bool
	}{
		{
			name:   "exact tier set",
			mutate: func(d []offer.DetailInput) []offer.DetailInput { return d },
		},
		{
			name:    "too few details",
			mutate:  func(d []offer.DetailInput) []offer.DetailInput { return d[:2] },
			wantErr: true,
		},
		{
			name: "duplicate tier",
			mutate: func(d []offer.DetailInput) []offer.DetailInput {
				d[2].OfferType = offer.TypeBasic
				return d
			},
			wantErr: true,
		},
		{
			name: "unknown tier",
			mutate: func(d []offer.DetailInput) []offer.DetailInput {
				d[0].OfferType = "deluxe"
				return d
			},
			wantErr: true,
		},
		{
			name: "negative price",
			mutate: func(d []offer.DetailInput) []offer.DetailInput {
				d[1].Price = -1
				return d
			},
			wantErr: true,
		},
		{
			name: "empty title",
			mutate: func(d []offer.DetailInput) []offer.DetailInput {
				d[0].Title = "   "
				return d
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOfferService(testutil.NewMockOfferRepository(), newTestLogger())

			input := offer.CreateInput{Title: "Logo design", Description: "Professional logos", Details: tt.mutate(threeTiers())}
			o, err := svc.Create(context.Background(), businessCaller, input)
			if tt.wantErr {
				assertAppError(t, err, apperrors.ErrCodeValidation)
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if len(o.Details) != 3 {
				t.Fatalf("Create() details = %d, want 3", len(o.Details))
			}
			if o.MinPrice == nil || *o.MinPrice != 10 {
				t.Errorf("min_price = %v, want 10", o.MinPrice)
			}
			if o.MinDeliveryTime == nil || *o.MinDeliveryTime != 3 {
				t.Errorf("min_delivery_time = %v, want 3", o.MinDeliveryTime)
			}
		})
	}
}

func TestOfferServiceCreateRequiresBusiness(t *testing.T) {
	svc := NewOfferService(testutil.NewMockOfferRepository(), newTestLogger())

	customer := auth.Identity{UserID: 2, Role: user.RoleCustomer}
	_, err := svc.Create(context.Background(), customer, offer.CreateInput{Title: "x", Details: threeTiers()})
	assertAppError(t, err, apperrors.ErrCodeForbidden)
}

func TestOfferServiceUpdateMergesByTier(t *testing.T) {
	repo := testutil.NewMockOfferRepository()
	svc := NewOfferService(repo, newTestLogger())

	created, err := svc.Create(context.Background(), businessCaller, offer.CreateInput{
		Title: "Logo design", Details: threeTiers(),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newPrice := 5.0
	updated, err := svc.Update(context.Background(), businessCaller, created.ID, offer.UpdateInput{
		Details: []offer.DetailPatch{{OfferType: offer.TypeStandard, Price: &newPrice}},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// The partition stays stable: still three rows, one per tier.
	if len(updated.Details) != 3 {
		t.Fatalf("details after update = %d, want 3", len(updated.Details))
	}
	for _, d := range updated.Details {
		switch d.OfferType {
		case offer.TypeStandard:
			if d.Price != 5 {
				t.Errorf("standard price = %v, want 5", d.Price)
			}
			if d.Title != "Standard" {
				t.Errorf("standard title = %q, untouched fields must survive the patch", d.Title)
			}
		case offer.TypeBasic:
			if d.Price != 10 {
				t.Errorf("basic price = %v, want 10", d.Price)
			}
		}
	}

	if updated.MinPrice == nil || *updated.MinPrice != 5 {
		t.Errorf("min_price after update = %v, want 5", updated.MinPrice)
	}
}

func TestOfferServiceUpdateUnknownTier(t *testing.T) {
	repo := testutil.NewMockOfferRepository()
	svc := NewOfferService(repo, newTestLogger())

	created, err := svc.Create(context.Background(), businessCaller, offer.CreateInput{
		Title: "Logo design", Details: threeTiers(),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	price := 99.0
	_, err = svc.Update(context.Background(), businessCaller, created.ID, offer.UpdateInput{
		Details: []offer.DetailPatch{{OfferType: "deluxe", Price: &price}},
	})
	assertAppError(t, err, apperrors.ErrCodeValidation)
}

func TestOfferServiceOwnership(t *testing.T) {
	repo := testutil.NewMockOfferRepository()
	svc := NewOfferService(repo, newTestLogger())

	created, err := svc.Create(context.Background(), businessCaller, offer.CreateInput{
		Title: "Logo design", Details: threeTiers(),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stranger := auth.Identity{UserID: 99, Role: user.RoleBusiness}

	title := "hijacked"
	if _, err := svc.Update(context.Background(), stranger, created.ID, offer.UpdateInput{Title: &title}); err == nil {
		t.Error("Update() by non-owner succeeded")
	}
	if err := svc.Delete(context.Background(), stranger, created.ID); err == nil {
		t.Error("Delete() by non-owner succeeded")
	}
	if err := svc.Delete(context.Background(), businessCaller, created.ID); err != nil {
		t.Errorf("Delete() by owner error = %v", err)
	}
}

func TestOfferServiceListFilters(t *testing.T) {
	repo := testutil.NewMockOfferRepository()
	svc := NewOfferService(repo, newTestLogger())

	if _, err := svc.Create(context.Background(), businessCaller, offer.CreateInput{
		Title: "Logo design", Details: threeTiers(),
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	slow := threeTiers()
	slow[0].DeliveryTimeInDays = 20
	slow[1].DeliveryTimeInDays = 25
	slow[2].DeliveryTimeInDays = 30
	other := auth.Identity{UserID: 7, Role: user.RoleBusiness}
	if _, err := svc.Create(context.Background(), other, offer.CreateInput{
		Title: "Slow translation", Details: slow,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Any tier within the bound qualifies, not only the minimum.
	maxDelivery := 7
	offers, total, err := svc.List(context.Background(), offer.Filter{MaxDeliveryTime: &maxDelivery}, 10, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || len(offers) != 1 {
		t.Fatalf("List(max_delivery_time=7) = %d offers, want 1", len(offers))
	}
	if offers[0].Title != "Logo design" {
		t.Errorf("List() returned %q", offers[0].Title)
	}

	creator := int64(7)
	_, total, err = svc.List(context.Background(), offer.Filter{CreatorID: &creator}, 10, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 {
		t.Errorf("List(creator_id=7) total = %d, want 1", total)
	}
}
