package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"famify/internal/service"
	"famify/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondWithJSON writes a JSON response with the given status
func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondWithError logs the underlying error and writes a JSON error body
func respondWithError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}
	respondWithJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError maps known service errors to HTTP statuses.
// Unrecognized errors become a 500 with a generic message.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	if errors.As(err, &validationErr) {
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
		return
	}

	switch {
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrEmptyTitle),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrEmptyItemName),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, service.ErrInvalidMealType),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidInviteToken),
		errors.Is(err, service.ErrInviteEmailMismatch):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFamilyMember):
		respondWithJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrFamilyNotFound),
		errors.Is(err, service.ErrListNotFound),
		errors.Is(err, service.ErrPostNotFound):
		respondWithJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

// decodeJSON parses a request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
