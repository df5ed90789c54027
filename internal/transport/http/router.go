package http

import (
	"log/slog"
	"net/http"
)

const welcomeMessage = "Bienvenido a la API de Gestión de Talleres UDI"

// NewRouter maps the API routes onto their handlers. Anything that matches no
// route, including an unsupported method on a known path, gets the JSON 404.
func NewRouter(workshops WorkshopService, participants ParticipantService, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", HealthHandler)
	mux.HandleFunc("/api", HandleWelcome)
	mux.HandleFunc("/api/{$}", HandleWelcome)

	workshopHandler := HandleWorkshops(workshops, logger)
	mux.Handle(workshopsPath, workshopHandler)
	mux.Handle(workshopsPath+"/", workshopHandler)

	participantHandler := HandleParticipants(participants, logger)
	mux.Handle(participantsPath, participantHandler)
	mux.Handle(participantsPath+"/", participantHandler)

	mux.Handle("/", NotFoundHandler())
	return mux
}

// HandleWelcome answers GET /api and GET /api/ with a fixed greeting.
func HandleWelcome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusNotFound, msgEndpointNotFound)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: welcomeMessage})
}
