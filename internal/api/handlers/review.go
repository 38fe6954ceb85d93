package handlers

import (
	"net/http"
	"strconv"

	"github.com/pratik-mahalle/gigmarket/internal/api/dto"
	"github.com/pratik-mahalle/gigmarket/internal/domain/review"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/utils"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
)

// ReviewHandler serves review CRUD
type ReviewHandler struct {
	reviews   review.Service
	validator *validator.Validator
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviews review.Service, v *validator.Validator) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, validator: v}
}

// Create handles POST /api/reviews/
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.ReviewCreateRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	rv, err := h.reviews.Create(r.Context(), caller, req.ToInput())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, rv)
}

// List handles GET /api/reviews/
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReviewFilter(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	reviews, err := h.reviews.List(r.Context(), filter)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, reviews)
}

func parseReviewFilter(r *http.Request) (review.Filter, error) {
	q := r.URL.Query()
	filter := review.Filter{Ordering: q.Get("ordering")}

	if raw := q.Get("business_user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return review.Filter{}, badQueryParam("business_user_id")
		}
		filter.BusinessUserID = &id
	}
	if raw := q.Get("reviewer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return review.Filter{}, badQueryParam("reviewer_id")
		}
		filter.ReviewerID = &id
	}
	return filter, nil
}

// Update handles PATCH /api/reviews/{id}/
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.ReviewUpdateRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	rv, err := h.reviews.Update(r.Context(), caller, id, req.ToInput())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rv)
}

// Delete handles DELETE /api/reviews/{id}/; a successful delete answers
// 200 with an empty object
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.reviews.Delete(r.Context(), caller, id); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, struct{}{})
}
