package handler

import (
	"net/http"

	"retailvision/internal/model"
	"retailvision/internal/service"

	"github.com/rs/zerolog"
)

// PlanogramHandler serves the planogram editor.
type PlanogramHandler struct {
	service service.PlanogramService
	logger  zerolog.Logger
}

// NewPlanogramHandler creates a new planogram handler.
func NewPlanogramHandler(service service.PlanogramService, logger zerolog.Logger) *PlanogramHandler {
	return &PlanogramHandler{
		service: service,
		logger:  logger.With().Str("handler", "planogram").Logger(),
	}
}

// Zones handles GET /api/planogram/zones.
func (h *PlanogramHandler) Zones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Zones())
}

// Palette handles GET /api/planogram/products?search=.
func (h *PlanogramHandler) Palette(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Palette(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve products", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Board handles GET /api/planogram/{storeId}.
func (h *PlanogramHandler) Board(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Board(r.Context(), r.PathValue("storeId"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve board", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Assign handles PUT /api/planogram/{storeId}/zones/{zoneId}.
func (h *PlanogramHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req model.AssignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, "invalid request body", h.logger)
		return
	}

	view, err := h.service.Assign(r.Context(), r.PathValue("storeId"), r.PathValue("zoneId"), req.ProductID)
	if err != nil {
		writeServiceError(w, err, "failed to assign product", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Unassign handles DELETE /api/planogram/{storeId}/products/{productId}.
func (h *PlanogramHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathInt(r, "productId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	view, err := h.service.Unassign(r.Context(), r.PathValue("storeId"), productID)
	if err != nil {
		writeServiceError(w, err, "failed to unassign product", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ZoneOf handles GET /api/planogram/{storeId}/products/{productId}/zone.
func (h *PlanogramHandler) ZoneOf(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathInt(r, "productId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	lookup, err := h.service.ZoneOf(r.Context(), r.PathValue("storeId"), productID)
	if err != nil {
		writeServiceError(w, err, "failed to look up placement", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, lookup)
}

// SaveLayout handles POST /api/planogram/{storeId}/layout.
func (h *PlanogramHandler) SaveLayout(w http.ResponseWriter, r *http.Request) {
	layout, err := h.service.SaveLayout(r.Context(), r.PathValue("storeId"))
	if err != nil {
		writeServiceError(w, err, "failed to save layout", h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, layout)
}

// LoadLayout handles POST /api/planogram/{storeId}/layout/load.
func (h *PlanogramHandler) LoadLayout(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.LoadLayout(r.Context(), r.PathValue("storeId"))
	if err != nil {
		writeServiceError(w, err, "failed to load layout", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
