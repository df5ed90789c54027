package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/udi/talleres-api/internal/domain"
)

const (
	msgEndpointNotFound = "Endpoint no encontrado"
	msgInvalidBody      = "El cuerpo de la solicitud debe ser un JSON válido."
	msgInternalError    = "Error interno del servidor"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	payload, err := json.Marshal(messageResponse{Message: msg})
	if err != nil {
		_, _ = w.Write([]byte(`{"message":"Error interno del servidor"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeServiceError maps service errors onto status codes: validation
// failures are 400, missing records 404, anything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, domain.ErrWorkshopNotFound), errors.Is(err, domain.ErrParticipantNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}
