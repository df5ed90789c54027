package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		wantID string
		wantOK bool
	}{
		{path: "/api/talleres", wantOK: true},
		{path: "/api/talleres/", wantOK: true},
		{path: "/api/talleres/abc", wantID: "abc", wantOK: true},
		{path: "/api/talleres/abc/", wantOK: false},
		{path: "/api/talleres/abc/def", wantOK: false},
		{path: "/api/talleresx", wantOK: false},
		{path: "/api/participantes/abc", wantOK: false},
	}

	for _, tt := range tests {
		id, ok := resourceID(tt.path, workshopsPath)
		assert.Equal(t, tt.wantOK, ok, tt.path)
		assert.Equal(t, tt.wantID, id, tt.path)
	}
}
