package handlers

import (
	"net/http"
	"strconv"

	"github.com/pratik-mahalle/gigmarket/internal/api/dto"
	"github.com/pratik-mahalle/gigmarket/internal/domain/offer"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/utils"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
)

// OfferHandler serves offer CRUD and the single-detail lookup
type OfferHandler struct {
	offers    offer.Service
	validator *validator.Validator
}

// NewOfferHandler creates a new OfferHandler
func NewOfferHandler(offers offer.Service, v *validator.Validator) *OfferHandler {
	return &OfferHandler{offers: offers, validator: v}
}

// wantsFullDetails reports whether the client asked for complete tier
// objects instead of the default thin links
func wantsFullDetails(r *http.Request) bool {
	return r.URL.Query().Get("details") == "full"
}

// Create handles POST /api/offers/
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.OfferCreateRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	o, err := h.offers.Create(r.Context(), caller, input)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	// Creation always responds with the full tier objects.
	utils.WriteJSON(w, http.StatusCreated, dto.NewOfferResponse(o, true))
}

// List handles GET /api/offers/
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseOfferFilter(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	params := utils.ParsePaginationParams(r)

	offers, total, err := h.offers.List(r.Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	results := dto.NewOfferResponses(offers, wantsFullDetails(r))
	utils.WriteJSON(w, http.StatusOK, utils.NewPaginatedResponse(r, results, params, total))
}

// parseOfferFilter reads the list query parameters; malformed numbers are
// a client error, not a silent default
func parseOfferFilter(r *http.Request) (offer.Filter, error) {
	q := r.URL.Query()
	filter := offer.Filter{
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
	}

	if raw := q.Get("creator_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return offer.Filter{}, badQueryParam("creator_id")
		}
		filter.CreatorID = &id
	}
	if raw := q.Get("min_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return offer.Filter{}, badQueryParam("min_price")
		}
		filter.MinPrice = &price
	}
	if raw := q.Get("max_delivery_time"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return offer.Filter{}, badQueryParam("max_delivery_time")
		}
		filter.MaxDeliveryTime = &days
	}
	return filter, nil
}

// Get handles GET /api/offers/{id}/
func (h *OfferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	o, err := h.offers.Get(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, dto.NewOfferResponse(o, wantsFullDetails(r)))
}

// Update handles PATCH /api/offers/{id}/
func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	caller, err := callerIdentity(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.OfferUpdateRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	o, err := h.offers.Update(r.Context(), caller, id, input)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, dto.NewOfferResponse(o, true))
}

// Delete handles DELETE /api/offers/{id}/
func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	caller, err := callerIdentity(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	if err := h.offers.Delete(r.Context(), caller, id); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetDetail handles GET /api/offerdetails/{id}/
func (h *OfferHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	d, err := h.offers.GetDetail(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, d)
}
