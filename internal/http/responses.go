package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/evgear/store-backend/internal/repository"
	"github.com/evgear/store-backend/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, details string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    code,
		Details: details,
	})
}

// handleServiceError maps service failures to HTTP statuses. Validation
// failures carry the offending product reference back to the client;
// store failures get a generic unavailability message.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		respondError(w, http.StatusBadRequest, "validation_failed", validationErr.Reason)
		return
	}

	if errors.Is(err, repository.ErrUnavailable) {
		log.Printf("request %s: store unavailable: %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusServiceUnavailable, "store_unavailable", "backing store is unavailable")
		return
	}

	log.Printf("request %s: internal error: %v", getRequestID(r.Context()), err)
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
