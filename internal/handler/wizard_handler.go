package handler

import (
	"net/http"

	"retailvision/internal/model"
	"retailvision/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WizardHandler serves add-retailer wizard sessions.
type WizardHandler struct {
	service service.WizardService
	logger  zerolog.Logger
}

// NewWizardHandler creates a new wizard handler.
func NewWizardHandler(service service.WizardService, logger zerolog.Logger) *WizardHandler {
	return &WizardHandler{
		service: service,
		logger:  logger.With().Str("handler", "wizard").Logger(),
	}
}

// Catalog handles GET /api/wizard/catalog.
func (h *WizardHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Catalog())
}

// Start handles POST /api/wizard.
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Start(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to start wizard", h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// Get handles GET /api/wizard/{id}.
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.Get(r.Context(), id)
	})
}

// Advance handles POST /api/wizard/{id}/advance.
func (h *WizardHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.Advance(r.Context(), id)
	})
}

// Retreat handles POST /api/wizard/{id}/retreat.
func (h *WizardHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.Retreat(r.Context(), id)
	})
}

// Finish handles POST /api/wizard/{id}/finish.
func (h *WizardHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.Finish(r.Context(), id)
	})
}

// SetDetails handles PUT /api/wizard/{id}/details.
func (h *WizardHandler) SetDetails(w http.ResponseWriter, r *http.Request) {
	var req model.WizardDetailsRequest
	h.withBody(w, r, &req, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.SetDetails(r.Context(), id, req)
	})
}

// SelectConnector handles PUT /api/wizard/{id}/connector.
func (h *WizardHandler) SelectConnector(w http.ResponseWriter, r *http.Request) {
	var req model.WizardConnectorRequest
	h.withBody(w, r, &req, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.SelectConnector(r.Context(), id, req.ConnectorID)
	})
}

// SetAPIKey handles PUT /api/wizard/{id}/api-key.
func (h *WizardHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req model.WizardAPIKeyRequest
	h.withBody(w, r, &req, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.SetAPIKey(r.Context(), id, req.APIKey)
	})
}

// MapField handles PUT /api/wizard/{id}/mappings.
func (h *WizardHandler) MapField(w http.ResponseWriter, r *http.Request) {
	var req model.WizardMappingRequest
	h.withBody(w, r, &req, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.MapField(r.Context(), id, req.Field, req.Column)
	})
}

// ToggleStore handles PUT /api/wizard/{id}/stores.
func (h *WizardHandler) ToggleStore(w http.ResponseWriter, r *http.Request) {
	var req model.WizardStoreRequest
	h.withBody(w, r, &req, func(id uuid.UUID) (*model.WizardSession, error) {
		return h.service.ToggleStore(r.Context(), id, req.Store, req.Selected)
	})
}

// Close handles DELETE /api/wizard/{id}.
func (h *WizardHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format", h.logger)
		return
	}

	if err := h.service.Close(r.Context(), id); err != nil {
		writeServiceError(w, err, "failed to close wizard", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WizardHandler) withSession(w http.ResponseWriter, r *http.Request, fn func(uuid.UUID) (*model.WizardSession, error)) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format", h.logger)
		return
	}

	session, err := fn(id)
	if err != nil {
		writeServiceError(w, err, "failed to update wizard", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// withBody decodes the request into dst before running fn.
func (h *WizardHandler) withBody(w http.ResponseWriter, r *http.Request, dst interface{}, fn func(uuid.UUID) (*model.WizardSession, error)) {
	if _, ok := pathUUID(r, "id"); !ok {
		writeError(w, http.StatusBadRequest, "invalid session ID format", h.logger)
		return
	}
	if err := decodeJSON(w, r, dst); err != nil {
		writeServiceError(w, err, "invalid request body", h.logger)
		return
	}
	h.withSession(w, r, fn)
}
