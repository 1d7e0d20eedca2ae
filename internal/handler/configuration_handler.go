package handler

import (
	"net/http"

	"retailvision/internal/model"
	"retailvision/internal/service"

	"github.com/rs/zerolog"
)

// ConfigurationHandler serves the category flow editor.
type ConfigurationHandler struct {
	service service.ConfigurationService
	logger  zerolog.Logger
}

// NewConfigurationHandler creates a new configuration handler.
func NewConfigurationHandler(service service.ConfigurationService, logger zerolog.Logger) *ConfigurationHandler {
	return &ConfigurationHandler{
		service: service,
		logger:  logger.With().Str("handler", "configuration").Logger(),
	}
}

// List handles GET /api/configurations?search=&status=.
func (h *ConfigurationHandler) List(w http.ResponseWriter, r *http.Request) {
	flows, err := h.service.List(r.Context(), listQuery(r, "status"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve configurations", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, flows)
}

// Stats handles GET /api/configurations/stats.
func (h *ConfigurationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to compute configuration stats", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Get handles GET /api/configurations/{flowId}.
func (h *ConfigurationHandler) Get(w http.ResponseWriter, r *http.Request) {
	flow, err := h.service.Get(r.Context(), r.PathValue("flowId"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve configuration", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, flow)
}

// Save handles POST /api/configurations/{flowId}/save.
func (h *ConfigurationHandler) Save(w http.ResponseWriter, r *http.Request) {
	flow, err := h.service.SaveFlow(r.Context(), r.PathValue("flowId"))
	if err != nil {
		writeServiceError(w, err, "failed to save configuration", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, flow)
}

// AddQuestion handles POST /api/configurations/{flowId}/questions.
func (h *ConfigurationHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var draft model.QuestionDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeServiceError(w, err, "invalid request body", h.logger)
		return
	}

	flow, err := h.service.AddQuestion(r.Context(), r.PathValue("flowId"), draft)
	if err != nil {
		writeServiceError(w, err, "failed to add question", h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, flow)
}

// UpdateQuestion handles PATCH /api/configurations/{flowId}/questions/{questionId}.
func (h *ConfigurationHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var patch model.QuestionPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeServiceError(w, err, "invalid request body", h.logger)
		return
	}

	flow, err := h.service.UpdateQuestion(r.Context(), r.PathValue("flowId"), r.PathValue("questionId"), patch)
	if err != nil {
		writeServiceError(w, err, "failed to update question", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, flow)
}

// DeleteQuestion handles DELETE /api/configurations/{flowId}/questions/{questionId}.
func (h *ConfigurationHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	flow, err := h.service.DeleteQuestion(r.Context(), r.PathValue("flowId"), r.PathValue("questionId"))
	if err != nil {
		writeServiceError(w, err, "failed to delete question", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, flow)
}
