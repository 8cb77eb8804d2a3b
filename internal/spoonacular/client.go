// Package spoonacular is the REST client for the Spoonacular recipe catalog.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/logger"
	"github.com/osse101/NutriFind_Go/internal/metrics"
	"github.com/osse101/NutriFind_Go/internal/search"
)

// Client calls the catalog. It performs no retries and no caching.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// NewClient creates a client with its own http.Client and the given timeout
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewClientWithHTTP(baseURL, apiKey, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP decorates httpClient's transport with the API key.
// httpClient is copied, so the caller's value is left untouched.
func NewClientWithHTTP(baseURL, apiKey string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%s", ErrMsgAPIKeyRequired)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: %q", ErrMsgInvalidBaseURL, baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	decorated := *httpClient
	decorated.Transport = newAPIKeyTransport(apiKey, httpClient.Transport)

	return &Client{baseURL: u, http: &decorated}, nil
}

// SearchRecipes runs a complex search
func (c *Client) SearchRecipes(ctx context.Context, params search.Params) (*domain.RecipeSearchResponse, error) {
	u := c.baseURL.JoinPath(PathComplexSearch)
	u.RawQuery = params.Values().Encode()

	var resp domain.RecipeSearchResponse
	if err := c.get(ctx, EndpointSearch, u, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []domain.RecipeSearchResult{}
	}
	return &resp, nil
}

// RandomRecipes returns number random recipes, optionally restricted by tags.
// A non-positive number falls back to DefaultRandomNumber.
func (c *Client) RandomRecipes(ctx context.Context, number int, tags []string) ([]domain.Recipe, error) {
	if number <= 0 {
		number = DefaultRandomNumber
	}
	q := url.Values{}
	q.Set(ParamNumber, strconv.Itoa(number))
	if joined := joinTags(tags); joined != "" {
		q.Set(ParamTags, joined)
	}

	u := c.baseURL.JoinPath(PathRandom)
	u.RawQuery = q.Encode()

	var resp map[string][]domain.Recipe
	if err := c.get(ctx, EndpointRandom, u, &resp); err != nil {
		return nil, err
	}
	recipes := resp[RandomRecipesKey]
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, nil
}

// RecipeInformation fetches one recipe by id
func (c *Client) RecipeInformation(ctx context.Context, id int, includeNutrition bool) (*domain.Recipe, error) {
	q := url.Values{}
	q.Set(ParamIncludeNutrition, strconv.FormatBool(includeNutrition))

	u := c.baseURL.JoinPath(PathRecipes, strconv.Itoa(id), PathInformation)
	u.RawQuery = q.Encode()

	var recipe domain.Recipe
	if err := c.get(ctx, EndpointInformation, u, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// get issues a GET and decodes a 2xx JSON body into out
func (c *Client) get(ctx context.Context, endpoint string, u *url.URL, out any) error {
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RemoteRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteRequestsTotal.WithLabelValues(endpoint, statusTransportError).Inc()
		log.Warn(LogMsgCatalogRequestFailed, "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.RemoteRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	log.Debug(LogMsgCatalogRequest, "endpoint", endpoint, "path", u.Path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, endpoint, err)
	}
	return nil
}

func newStatusError(endpoint string, resp *http.Response) *StatusError {
	statusErr := &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var parsed errorBody
	if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
		statusErr.Message = parsed.Message
	} else {
		statusErr.Message = strings.TrimSpace(string(body))
	}
	return statusErr
}

func joinTags(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, ",")
}
