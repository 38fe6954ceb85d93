package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/gigmarket/internal/api/middleware"
	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/logger"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
	"github.com/pratik-mahalle/gigmarket/internal/services"
	"github.com/pratik-mahalle/gigmarket/internal/testutil"
)

func newOfferTestRouter(t *testing.T) (*chi.Mux, *services.OfferService) {
	t.Helper()

	svc := services.NewOfferService(testutil.NewMockOfferRepository(),
		logger.New(logger.Config{Level: "error", Format: "console"}))
	h := NewOfferHandler(svc, validator.New())

	r := chi.NewRouter()
	r.Post("/api/offers", h.Create)
	r.Get("/api/offers", h.List)
	r.Get("/api/offers/{id}", h.Get)
	r.Patch("/api/offers/{id}", h.Update)
	r.Get("/api/offerdetails/{id}", h.GetDetail)
	return r, svc
}

func withIdentity(r *http.Request, identity auth.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.IdentityKey, identity)
	return r.WithContext(ctx)
}

const validOfferBody = `{
	"title": "Logo design",
	"description": "Packages",
	"details": [
		{"title": "Basic", "revisions": 1, "delivery_time_in_days": 7, "price": 10, "features": ["logo"], "offer_type": "basic"},
		{"title": "Standard", "revisions": 2, "delivery_time_in_days": 5, "price": 20, "features": ["logo", "card"], "offer_type": "standard"},
		{"title": "Premium", "revisions": 5, "delivery_time_in_days": 3, "price": 30, "features": ["logo", "card", "flyer"], "offer_type": "premium"}
	]
}`

func TestOfferHandlerCreate(t *testing.T) {
	router, _ := newOfferTestRouter(t)
	business := auth.Identity{UserID: 1, Role: user.RoleBusiness}

	req := httptest.NewRequest(http.MethodPost, "/api/offers", strings.NewReader(validOfferBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withIdentity(req, business))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID       int64            `json:"id"`
		MinPrice float64          `json:"min_price"`
		Details  []map[string]any `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.MinPrice != 10 {
		t.Errorf("min_price = %v, want 10", resp.MinPrice)
	}
	// Creation responds with full tier objects, not links.
	if len(resp.Details) != 3 {
		t.Fatalf("details = %d, want 3", len(resp.Details))
	}
	if _, ok := resp.Details[0]["price"]; !ok {
		t.Error("created offer details are thin links, want full objects")
	}
}

func TestOfferHandlerCreateBadFeatures(t *testing.T) {
	router, _ := newOfferTestRouter(t)
	business := auth.Identity{UserID: 1, Role: user.RoleBusiness}

	body := strings.Replace(validOfferBody, `["logo"]`, `["logo", 7, true]`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/offers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withIdentity(req, business))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	// The offending indices show up in the error details.
	if !strings.Contains(rec.Body.String(), "[1 2]") {
		t.Errorf("error does not report offending indices: %s", rec.Body.String())
	}
}

func TestOfferHandlerCreateTwoTiers(t *testing.T) {
	router, _ := newOfferTestRouter(t)
	business := auth.Identity{UserID: 1, Role: user.RoleBusiness}

	body := `{
		"title": "Logo design",
		"details": [
			{"title": "Basic", "revisions": 1, "delivery_time_in_days": 7, "price": 10, "features": [], "offer_type": "basic"},
			{"title": "Standard", "revisions": 2, "delivery_time_in_days": 5, "price": 20, "features": [], "offer_type": "standard"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/offers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withIdentity(req, business))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestOfferHandlerUpdateEmptyDetails(t *testing.T) {
	router, _ := newOfferTestRouter(t)
	business := auth.Identity{UserID: 1, Role: user.RoleBusiness}

	req := httptest.NewRequest(http.MethodPost, "/api/offers", strings.NewReader(validOfferBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withIdentity(req, business))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	// Leaving details out entirely is a valid scalar-only patch.
	req = httptest.NewRequest(http.MethodPatch, "/api/offers/1", strings.NewReader(`{"title": "New title"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, withIdentity(req, business))
	if rec.Code != http.StatusOK {
		t.Fatalf("scalar patch status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// An explicitly empty details list is malformed.
	req = httptest.NewRequest(http.MethodPatch, "/api/offers/1", strings.NewReader(`{"details": []}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, withIdentity(req, business))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty details status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "non-empty") {
		t.Errorf("error does not explain the empty list: %s", rec.Body.String())
	}
}

func TestOfferHandlerGetThinAndFull(t *testing.T) {
	router, svc := newOfferTestRouter(t)
	business := auth.Identity{UserID: 1, Role: user.RoleBusiness}

	created, err := svc.Create(context.Background(), business, offer.CreateInput{
		Title: "Logo design",
		Details: []offer.DetailInput{
			{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 10, OfferType: offer.TypeBasic},
			{Title: "Standard", Revisions: 2, DeliveryTimeInDays: 5, Price: 20, OfferType: offer.TypeStandard},
			{Title: "Premium", Revisions: 5, DeliveryTimeInDays: 3, Price: 30, OfferType: offer.TypePremium},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Default read returns thin links.
	req := httptest.NewRequest(http.MethodGet, "/api/offers/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var thin struct {
		Details []map[string]any `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &thin); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(thin.Details) != 3 {
		t.Fatalf("details = %d, want 3", len(thin.Details))
	}
	if _, ok := thin.Details[0]["url"]; !ok {
		t.Error("default read is missing detail links")
	}
	if _, ok := thin.Details[0]["price"]; ok {
		t.Error("default read leaks full detail fields")
	}

	// ?details=full returns the complete tier objects.
	req = httptest.NewRequest(http.MethodGet, "/api/offers/1?details=full", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var full struct {
		Details []map[string]any `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &full); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if _, ok := full.Details[0]["price"]; !ok {
		t.Error("?details=full did not return full objects")
	}

	_ = created
}

func TestOfferHandlerListPagination(t *testing.T) {
	router, svc := newOfferTestRouter(t)
	business := auth.Identity{UserID: 1, Role: user.RoleBusiness}

	for i := 0; i < 8; i++ {
		if _, err := svc.Create(context.Background(), business, offer.CreateInput{
			Title: "Offer",
			Details: []offer.DetailInput{
				{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 10, OfferType: offer.TypeBasic},
				{Title: "Standard", Revisions: 2, DeliveryTimeInDays: 5, Price: 20, OfferType: offer.TypeStandard},
				{Title: "Premium", Revisions: 5, DeliveryTimeInDays: 3, Price: 30, OfferType: offer.TypePremium},
			},
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/offers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var page struct {
		Count    int64            `json:"count"`
		Next     *string          `json:"next"`
		Previous *string          `json:"previous"`
		Results  []map[string]any `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if page.Count != 8 {
		t.Errorf("count = %d, want 8", page.Count)
	}
	// The default page size is six.
	if len(page.Results) != 6 {
		t.Errorf("results = %d, want 6", len(page.Results))
	}
	if page.Next == nil {
		t.Error("next link missing on first page")
	}
	if page.Previous != nil {
		t.Error("previous link present on first page")
	}
}

func TestOfferHandlerGetUnknown(t *testing.T) {
	router, _ := newOfferTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/offers/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
