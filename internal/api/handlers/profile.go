package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/gigmarket/internal/api/dto"
	"github.com/pratik-mahalle/gigmarket/internal/domain/profile"
	"github.com/pratik-mahalle/gigmarket/internal/domain/user"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/utils"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
	"github.com/pratik-mahalle/gigmarket/internal/storage"
)

// ProfileHandler serves profile reads, updates, type listings and uploads
type ProfileHandler struct {
	profiles  profile.Service
	store     storage.Store
	validator *validator.Validator
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profiles profile.Service, store storage.Store, v *validator.Validator) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, store: store, validator: v}
}

// Get handles GET /api/profile/{pk}/
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "pk")
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	caller, err := callerIdentity(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	p, err := h.profiles.Get(r.Context(), caller, id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

// Update handles PATCH /api/profile/{pk}/
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "pk")
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	caller, err := callerIdentity(r)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	var req dto.ProfileUpdateRequest
	if err := decodeAndValidate(r, h.validator, &req); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	p, err := h.profiles.Update(r.Context(), caller, id, req.ToInput())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

// ListBusiness handles GET /api/profiles/business/
func (h *ProfileHandler) ListBusiness(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, user.RoleBusiness)
}

// ListCustomer handles GET /api/profiles/customer/
func (h *ProfileHandler) ListCustomer(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, user.RoleCustomer)
}

func (h *ProfileHandler) listByRole(w http.ResponseWriter, r *http.Request, role string) {
	profiles, err := h.profiles.ListByRole(r.Context(), role)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, dto.NewProfileListItems(profiles))
}

// Upload handles POST /api/upload/; it stores the file and returns the
// path for use in a subsequent profile or offer patch
func (h *ProfileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, err := callerIdentity(r); err != nil {
		utils.WriteAppError(w, err)
		return
	}

	// 10 MiB upload cap
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.WriteAppError(w, apperrBadUpload())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteAppError(w, apperrBadUpload())
		return
	}
	defer file.Close()

	path, err := h.store.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, dto.UploadResponse{File: path})
}
