package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/gigmarket/internal/api/dto"
	"github.com/pratik-mahalle/gigmarket/internal/domain/order"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/utils"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
)

// OrderHandler serves order CRUD and the business count endpoints
type OrderHandler struct {
	orders    order.Service
	validator *validator.Validator
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders order.Service, v *validator.Validator) *OrderHandler {
	return &OrderHandler{orders: orders, validator: v}
}

// Create handles POST /api/orders/
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.OrderCreateRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	o, err := h.orders.Create(r.Context(), caller, req.OfferDetailID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, o)
}

// List handles GET /api/orders/
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := callerIdentity(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	orders, err := h.orders.List(r.Context(), caller)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/orders/{id}/
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	o, err := h.orders.Get(r.Context(), caller, id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

// UpdateStatus handles PATCH /api/orders/{id}/
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	var req dto.OrderStatusRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	o, err := h.orders.UpdateStatus(r.Context(), caller, id, req.Status)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

// Delete handles DELETE /api/orders/{id}/
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.orders.Delete(r.Context(), caller, id); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Count handles GET /api/order-count/{id}/
func (h *OrderHandler) Count(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	count, err := h.orders.CountForBusiness(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, dto.OrderCountResponse{OrderCount: count})
}

// CompletedCount handles GET /api/completed-order-count/{id}/
func (h *OrderHandler) CompletedCount(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "id")
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	count, err := h.orders.CountCompletedForBusiness(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, dto.CompletedOrderCountResponse{CompletedOrderCount: count})
}
