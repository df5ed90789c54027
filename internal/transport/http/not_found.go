package http

import "net/http"

// NotFoundHandler answers every request it receives with the JSON 404 used
// for unmatched routes.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgEndpointNotFound)
	})
}
