package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/udi/talleres-api/internal/domain"
)

const participantsPath = "/api/participantes"

// ParticipantService is the minimal interface needed for participant endpoints.
type ParticipantService interface {
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	GetParticipant(ctx context.Context, id string) (domain.Participant, error)
	CreateParticipant(ctx context.Context, in domain.ParticipantPatch) (domain.Participant, error)
	UpdateParticipant(ctx context.Context, id string, in domain.ParticipantPatch) (domain.Participant, error)
	DeleteParticipant(ctx context.Context, id string) error
}

// HandleParticipants serves /api/participantes and /api/participantes/{id}.
func HandleParticipants(svc ParticipantService, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := resourceID(r.URL.Path, participantsPath)
		if !ok {
			writeError(w, http.StatusNotFound, msgEndpointNotFound)
			return
		}

		switch {
		case id == "" && r.Method == http.MethodGet:
			participants, err := svc.ListParticipants(r.Context())
			if err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			writeJSON(w, http.StatusOK, participants)

		case id == "" && r.Method == http.MethodPost:
			var in domain.ParticipantPatch
			if err := decodeBody(w, r, &in); err != nil {
				writeError(w, http.StatusBadRequest, msgInvalidBody)
				return
			}
			participant, err := svc.CreateParticipant(r.Context(), in)
			if err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			writeJSON(w, http.StatusCreated, participant)

		case id != "" && r.Method == http.MethodGet:
			participant, err := svc.GetParticipant(r.Context(), id)
			if err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			writeJSON(w, http.StatusOK, participant)

		case id != "" && r.Method == http.MethodPut:
			var in domain.ParticipantPatch
			if err := decodeBody(w, r, &in); err != nil {
				writeError(w, http.StatusBadRequest, msgInvalidBody)
				return
			}
			participant, err := svc.UpdateParticipant(r.Context(), id, in)
			if err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			writeJSON(w, http.StatusOK, participant)

		case id != "" && r.Method == http.MethodDelete:
			if err := svc.DeleteParticipant(r.Context(), id); err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)

		default:
			writeError(w, http.StatusNotFound, msgEndpointNotFound)
		}
	}
}
