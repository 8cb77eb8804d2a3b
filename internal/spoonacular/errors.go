package spoonacular

import (
	"fmt"
	"net/http"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// StatusError is returned for any non-2xx catalog response
type StatusError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s returned %d: %s", domain.ErrMsgRemoteUnavailable, e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s returned %d", domain.ErrMsgRemoteUnavailable, e.Endpoint, e.StatusCode)
}

// Unwrap exposes domain.ErrRemoteUnavailable, plus domain.ErrRecipeNotFound
// for a 404 from the information endpoint.
func (e *StatusError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound && e.Endpoint == EndpointInformation {
		return []error{domain.ErrRemoteUnavailable, domain.ErrRecipeNotFound}
	}
	return []error{domain.ErrRemoteUnavailable}
}

// errorBody is the JSON shape of a catalog error response
type errorBody struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
