package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/torfinnnome/fremgang/internal/services"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondJSON sends a JSON response with the given status
func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// respondServiceError maps service errors onto status codes. Anything
// outside the known taxonomy is a store failure: logged in full, returned
// as a generic 500 so driver internals never reach the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrEmailExists):
		respondError(w, "email already exists", http.StatusConflict)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, services.ErrForbidden):
		respondError(w, "forbidden", http.StatusForbidden)
	default:
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		respondError(w, "internal server error", http.StatusInternalServerError)
	}
}
