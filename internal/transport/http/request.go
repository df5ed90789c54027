package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 20

// decodeBody reads a JSON object into dst. An empty body is treated as {}.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

// resourceID splits a request path under prefix. The collection itself
// (with or without trailing slash) yields "", true; a single extra segment
// yields that segment; anything deeper is not a route.
func resourceID(path, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok {
		return "", false
	}
	if rest == "" || rest == "/" {
		return "", true
	}
	if !strings.HasPrefix(rest, "/") {
		return "", false
	}
	id := rest[1:]
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
