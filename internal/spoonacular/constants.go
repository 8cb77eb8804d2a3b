package spoonacular

import "time"

// Catalog endpoints, relative to the base URL
const (
	PathComplexSearch = "recipes/complexSearch"
	PathRandom        = "recipes/random"
	PathRecipes       = "recipes"
	PathInformation   = "information"
)

// Endpoint labels for logs and metrics
const (
	EndpointSearch      = "complexSearch"
	EndpointRandom      = "random"
	EndpointInformation = "information"
)

// Query parameters
const (
	ParamAPIKey           = "apiKey"
	ParamNumber           = "number"
	ParamTags             = "tags"
	ParamIncludeNutrition = "includeNutrition"
)

// RandomRecipesKey labels the recipe list in a random-recipes response
const RandomRecipesKey = "recipes"

// Defaults
const (
	DefaultBaseURL      = "https://api.spoonacular.com/"
	DefaultTimeout      = 30 * time.Second
	DefaultRandomNumber = 10

	// maxErrorBody bounds how much of a failed response body is read
	maxErrorBody = 4 << 10
)

// Metric status label for requests that never got a response
const statusTransportError = "error"

// Log messages
const (
	LogMsgCatalogRequest       = "Catalog request completed"
	LogMsgCatalogRequestFailed = "Catalog request failed"
)

// Error messages
const (
	ErrMsgInvalidBaseURL = "invalid catalog base URL"
	ErrMsgAPIKeyRequired = "catalog API key is required"
)
