package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemcatalog/pkg/httpx"
)

func TestJSON_headersAndBody(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"id": "abc"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	for header, want := range map[string]string{
		"Content-Type":           "application/json; charset=utf-8",
		"X-Content-Type-Options": "nosniff",
		"Cache-Control":          "no-store",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s: expected %q, got %q", header, want, got)
		}
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["id"] != "abc" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestJSONError_omitsFields(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusNotFound, "item not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "item not found" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
	if _, ok := body["fields"]; ok {
		t.Errorf("fields should be omitted, got %v", body["fields"])
	}
}

func TestJSONFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONFieldErrors(w, http.StatusBadRequest, "name: name is required",
		map[string]string{"name": "name is required"})

	var body httpx.ErrorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Error != "name: name is required" || body.Fields["name"] != "name is required" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("pq: connection refused")
	tests := []struct {
		name       string
		status     int
		production bool
		want       string
	}{
		{"client error in production", http.StatusNotFound, true, "pq: connection refused"},
		{"server error in development", http.StatusInternalServerError, false, "pq: connection refused"},
		{"server error in production", http.StatusInternalServerError, true, "Internal Server Error"},
		{"unavailable in production", http.StatusServiceUnavailable, true, "Service Unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := httpx.SafeError(err, tt.status, tt.production); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
