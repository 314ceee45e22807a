package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tunafinance/pesaboard/internal/adapter/http/dto"
	"github.com/tunafinance/pesaboard/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTimeframe):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorDetails returns the raw error text in development and an empty string
// otherwise; production responses carry only the generic message.
func errorDetails(env string, err error) string {
	if env == "development" {
		return err.Error()
	}
	return ""
}
