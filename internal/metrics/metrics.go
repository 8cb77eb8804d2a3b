package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Remote catalog Metrics
var (
	RemoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRemoteRequestsTotal,
			Help: HelpTextRemoteRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRemoteRequestDuration,
			Help:    HelpTextRemoteRequestDuration,
			Buckets: RemoteLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Event Metrics
var (
	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreMutations,
			Help: HelpTextStoreMutations,
		},
		[]string{LabelTopic, LabelOperation},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreErrors,
			Help: HelpTextStoreErrors,
		},
		[]string{LabelOperation},
	)

	SessionChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionChanges,
			Help: HelpTextSessionChanges,
		},
		[]string{LabelSignedIn},
	)

	LiveSubscriptionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLiveSubscriptionsActive,
			Help: HelpTextLiveSubscriptionsActive,
		},
		[]string{LabelQuery},
	)
)

// Business Metrics
var (
	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	RecipesViewed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesViewed,
			Help: HelpTextRecipesViewed,
		},
	)
)
