package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notifyhub/pushover/internal/domain"
	"github.com/notifyhub/pushover/pkg/pushover"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// mapError translates domain and pushover errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrNoRecipient),
		errors.Is(err, pushover.ErrInvalidPriority),
		errors.Is(err, pushover.ErrEmptyField),
		errors.Is(err, pushover.ErrMissingDestination),
		errors.Is(err, pushover.ErrMissingBody):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUpstreamRejected):
		respondError(w, http.StatusBadGateway, domain.ErrUpstreamRejected.Error())
	case errors.Is(err, pushover.ErrTransport):
		respondError(w, http.StatusBadGateway, "pushover API unavailable")
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
