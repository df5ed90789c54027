package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/udi/talleres-api/internal/domain"
)

const workshopsPath = "/api/talleres"

// WorkshopService is the minimal interface needed for workshop endpoints.
type WorkshopService interface {
	ListWorkshops(ctx context.Context) ([]domain.Workshop, error)
	GetWorkshop(ctx context.Context, id string) (domain.Workshop, error)
	CreateWorkshop(ctx context.Context, in domain.WorkshopPatch) (domain.Workshop, error)
	UpdateWorkshop(ctx context.Context, id string, in domain.WorkshopPatch) (domain.Workshop, error)
	DeleteWorkshop(ctx context.Context, id string) error
}

// HandleWorkshops serves /api/talleres and /api/talleres/{id}.
func HandleWorkshops(svc WorkshopService, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := resourceID(r.URL.Path, workshopsPath)
		if !ok {
			writeError(w, http.StatusNotFound, msgEndpointNotFound)
			return
		}

		switch {
		case id == "" && r.Method == http.MethodGet:
			workshops, err := svc.ListWorkshops(r.Context())
			if err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			writeJSON(w, http.StatusOK, workshops)

		case id == "" && r.Method == http.MethodPost:
			var in domain.WorkshopPatch
			if err := decodeBody(w, r, &in); err != nil {
				writeError(w, http.StatusBadRequest, msgInvalidBody)
				return
			}
			workshop, err := svc.CreateWorkshop(r.Context(), in)
			if err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			writeJSON(w, http.StatusCreated, workshop)

		case id != "" && r.Method == http.MethodGet:
			workshop, err := svc.GetWorkshop(r.Context(), id)
			if err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			writeJSON(w, http.StatusOK, workshop)

		case id != "" && r.Method == http.MethodPut:
			var in domain.WorkshopPatch
			if err := decodeBody(w, r, &in); err != nil {
				writeError(w, http.StatusBadRequest, msgInvalidBody)
				return
			}
			workshop, err := svc.UpdateWorkshop(r.Context(), id, in)
			if err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			writeJSON(w, http.StatusOK, workshop)

		case id != "" && r.Method == http.MethodDelete:
			if err := svc.DeleteWorkshop(r.Context(), id); err != nil {
				writeServiceError(w, r, logger, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)

		default:
			writeError(w, http.StatusNotFound, msgEndpointNotFound)
		}
	}
}
