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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Spinner Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelOutcome},
	)

	SpinsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsRejected,
			Help: HelpTextSpinsRejected,
		},
		[]string{LabelReason},
	)

	SpinOptionCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSpinOptionCount,
			Help:    HelpTextSpinOptionCount,
			Buckets: OptionCountBuckets,
		},
	)

	OptionCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameOptionCount,
			Help: HelpTextOptionCount,
		},
	)

	OptionActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOptionActions,
			Help: HelpTextOptionActions,
		},
		[]string{LabelAction},
	)

	HistoryEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHistoryEntries,
			Help: HelpTextHistoryEntries,
		},
	)

	AnalyticsEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnalyticsEvents,
			Help: HelpTextAnalyticsEvents,
		},
		[]string{LabelAction, LabelCategory},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)

// Storage Metrics
var (
	StorageUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameStorageUp,
			Help: HelpTextStorageUp,
		},
		[]string{LabelDriver},
	)

	StorageCheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameStorageCheckTime,
			Help:    HelpTextStorageCheckTime,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelDriver},
	)
)
