package http

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandler reports basic liveness for the service.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusNotFound, msgEndpointNotFound)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
