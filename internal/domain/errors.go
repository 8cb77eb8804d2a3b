package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Remote catalog errors
	ErrMsgRemoteUnavailable = "recipe service unavailable"
	ErrMsgMalformedResponse = "malformed response from recipe service"

	// Storage errors
	ErrMsgDatabaseError  = "database error"
	ErrMsgRecordNotFound = "record not found"
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgItemNotFound   = "shopping list item not found"

	// Settings errors
	ErrMsgInvalidLanguage = "unsupported language code"

	// Identity errors
	ErrMsgInvalidCredential = "invalid credential"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Remote catalog errors
	ErrRemoteUnavailable = errors.New(ErrMsgRemoteUnavailable)
	ErrMalformedResponse = errors.New(ErrMsgMalformedResponse)

	// Storage errors
	ErrDatabaseError  = errors.New(ErrMsgDatabaseError)
	ErrRecordNotFound = errors.New(ErrMsgRecordNotFound)
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)

	// Settings errors
	ErrInvalidLanguage = errors.New(ErrMsgInvalidLanguage)

	// Identity errors
	ErrInvalidCredential = errors.New(ErrMsgInvalidCredential)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
