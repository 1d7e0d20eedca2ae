package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"retailvision/internal/filter"
	"retailvision/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies; every payload is a small JSON object.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps domain errors to 404 or 400 and anything else to a
// 500 carrying fallback as the message.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var de *model.DomainError
	if !errors.As(err, &de) {
		logger.Error().Err(err).Msg(fallback)
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error: fallback,
			Code:  model.ErrCodeInternalError,
		})
		return
	}

	status := http.StatusBadRequest
	if model.IsNotFound(err) {
		status = http.StatusNotFound
	}

	logger.Warn().Str("code", de.Code).Int("status", status).Msg(de.Message)
	writeJSON(w, status, model.ErrorResponse{Error: de.Message, Code: de.Code})
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.ErrInvalidJSON
	}
	return nil
}

// listQuery reads the search term and the named category parameter.
func listQuery(r *http.Request, categoryParam string) filter.Query {
	q := r.URL.Query()
	return filter.Query{
		Search:   q.Get("search"),
		Category: q.Get(categoryParam),
	}
}

// pathInt parses a numeric path value.
func pathInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, false
	}
	return v, true
}

// pathUUID parses a UUID path value.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
