package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still become a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with the status mapped from it.
// fallback is used as the message for errors with no specific mapping.
func respondServiceError(w http.ResponseWriter, r *http.Request, fallback string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	if message == "" {
		message = fallback
	}

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", fallback, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", fallback, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgRecipeNotFoundError = "Recipe not found"
	ErrMsgItemNotFoundError   = "Shopping list item not found"
	ErrMsgRecordNotFoundError = "Not found"
	ErrMsgRemoteUnavailable   = "The recipe service is unavailable. Please try again later."
	ErrMsgRemoteMalformed     = "The recipe service sent an unexpected response."
	ErrMsgInvalidLanguage     = "Unsupported language. Use en, af or zu."
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgCredentialError     = "Sign-in failed"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// user-facing messages. An empty message means the caller's fallback applies.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, ErrMsgRecordNotFoundError
	case errors.Is(err, domain.ErrInvalidLanguage):
		return http.StatusBadRequest, ErrMsgInvalidLanguage
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized, ErrMsgCredentialError
	case errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway, ErrMsgRemoteMalformed
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return http.StatusBadGateway, ErrMsgRemoteUnavailable
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ""
}
