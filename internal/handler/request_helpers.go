package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/NutriFind_Go/internal/logger"
)

// maxBodyBytes caps decoded request bodies
const maxBodyBytes = 1 << 20

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates
// it. On failure the response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req AddItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add shopping list item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(req); err != nil {
		log.Warn(LogMsgRequestDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	return validateRequest(w, req)
}

func validateRequest(w http.ResponseWriter, req interface{}) error {
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// GetOptionalQueryParam returns the trimmed query parameter, or defaultValue
// when it is missing or blank
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetOptionalIntParam parses an optional integer query parameter. A missing
// parameter yields nil. On a malformed value the response has already been
// written and ok is false.
func GetOptionalIntParam(r *http.Request, w http.ResponseWriter, paramName string) (value *int, ok bool) {
	raw := GetOptionalQueryParam(r, paramName, "")
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidNumber, paramName))
		return nil, false
	}
	return &n, true
}

// GetListParam splits a comma separated query parameter, dropping blanks
func GetListParam(r *http.Request, paramName string) []string {
	raw := GetOptionalQueryParam(r, paramName, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// pathInt64 reads a positive integer URL parameter. On failure the response
// has already been written and ok is false.
func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, ok := pathInt64(w, r, name)
	if !ok {
		return 0, false
	}
	if int64(int(id)) != id {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return int(id), true
}
