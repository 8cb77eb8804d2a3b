package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Remote catalog metric names
const (
	MetricNameRemoteRequestsTotal   = "spoonacular_requests_total"
	MetricNameRemoteRequestDuration = "spoonacular_request_duration_seconds"
)

// Event metric names
const (
	MetricNameStoreMutations          = "store_mutations_total"
	MetricNameStoreErrors             = "store_errors_total"
	MetricNameSessionChanges          = "session_changes_total"
	MetricNameLiveSubscriptionsActive = "live_subscriptions_active"
)

// Business metric names
const (
	MetricNameSearchesPerformed = "searches_performed_total"
	MetricNameRecipesViewed     = "recipes_viewed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Remote catalog metric help text
const (
	HelpTextRemoteRequestsTotal   = "Total number of requests sent to the recipe catalog"
	HelpTextRemoteRequestDuration = "Recipe catalog request latency in seconds"
)

// Event metric help text
const (
	HelpTextStoreMutations          = "Total number of committed store mutations"
	HelpTextStoreErrors             = "Total number of failed store operations"
	HelpTextSessionChanges          = "Total number of sign-in and sign-out transitions"
	HelpTextLiveSubscriptionsActive = "Current number of open live query subscriptions"
)

// Business metric help text
const (
	HelpTextSearchesPerformed = "Total number of recipe searches sent to the catalog"
	HelpTextRecipesViewed     = "Total number of recipe detail views"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelEndpoint  = "endpoint"
	LabelTopic     = "topic"
	LabelOperation = "operation"
	LabelQuery     = "query"
	LabelSignedIn  = "signed_in"
)

// LabelValueUnmatched is used for requests that matched no route
const LabelValueUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RemoteLatencyBuckets covers catalog round trips, which are dominated by WAN latency
var RemoteLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
