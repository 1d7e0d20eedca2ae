package handler

import (
	"net/http"

	"retailvision/internal/service"

	"github.com/rs/zerolog"
)

// DashboardHandler serves the overview screen.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.Overview(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to build dashboard", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
