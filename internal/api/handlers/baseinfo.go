package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/gigmarket/internal/domain/info"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/utils"
)

// BaseInfoHandler serves the public platform snapshot
type BaseInfoHandler struct {
	info info.Service
}

// NewBaseInfoHandler creates a new BaseInfoHandler
func NewBaseInfoHandler(svc info.Service) *BaseInfoHandler {
	return &BaseInfoHandler{info: svc}
}

// Get handles GET /api/base-info/
func (h *BaseInfoHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.info.Stats(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}
