package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"famify/internal/service"
	"famify/internal/validation"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	return body
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respondWithJSON(rec, http.StatusCreated, map[string]string{"hello": "world"})

	if rec.Code != http.StatusCreated {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("Body = %v", body)
	}
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	respondWithError(rec, http.StatusBadRequest, "Something went wrong", errors.New("details"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if body := decodeErrorBody(t, rec); body.Error != "Something went wrong" {
		t.Errorf("Error = %q", body.Error)
	}
}

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"email taken", service.ErrEmailTaken, http.StatusBadRequest},
		{"already member", service.ErrAlreadyMember, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not a member", service.ErrNotFamilyMember, http.StatusForbidden},
		{"family not found", service.ErrFamilyNotFound, http.StatusNotFound},
		{"post not found", service.ErrPostNotFound, http.StatusNotFound},
		{"validation error", validation.ValidationError{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondWithServiceError(rec, tt.err)
			if rec.Code != tt.status {
				t.Errorf("Status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestRespondWithServiceErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	respondWithServiceError(rec, errors.New("pq: connection refused on 10.0.0.5"))

	if body := decodeErrorBody(t, rec); body.Error != "Internal server error" {
		t.Errorf("Internal details leaked: %q", body.Error)
	}
}
