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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Spinner metric names
const (
	MetricNameSpinsTotal       = "spinner_spins_total"
	MetricNameSpinsRejected    = "spinner_spins_rejected_total"
	MetricNameSpinOptionCount  = "spinner_spin_option_count"
	MetricNameOptionCount      = "spinner_options"
	MetricNameOptionActions    = "spinner_option_actions_total"
	MetricNameHistoryEntries   = "spinner_history_entries"
	MetricNameAnalyticsEvents  = "spinner_analytics_events_total"
	MetricNameStorageUp        = "spinner_storage_up"
	MetricNameStorageCheckTime = "spinner_storage_check_duration_seconds"
	MetricNameSSEClients       = "spinner_sse_clients"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Spinner metric help text
const (
	HelpTextSpinsTotal       = "Total number of spins by outcome"
	HelpTextSpinsRejected    = "Total number of rejected spin requests by reason"
	HelpTextSpinOptionCount  = "Number of options on the wheel per settled spin"
	HelpTextOptionCount      = "Current number of options on the wheel"
	HelpTextOptionActions    = "Total number of option list changes by action"
	HelpTextHistoryEntries   = "Current number of history entries"
	HelpTextAnalyticsEvents  = "Total number of tracked analytics events"
	HelpTextStorageUp        = "Whether the storage driver answered its last health check"
	HelpTextStorageCheckTime = "Storage health check latency in seconds"
	HelpTextSSEClients       = "Current number of connected SSE clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelOutcome  = "outcome"
	LabelReason   = "reason"
	LabelAction   = "action"
	LabelCategory = "category"
	LabelDriver   = "driver"
)

// Spin outcomes
const (
	OutcomeSettled   = "settled"
	OutcomeCancelled = "cancelled"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s. POST /spin blocks for the spin duration and
// lands in the upper buckets.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// OptionCountBuckets covers every legal wheel size
var OptionCountBuckets = []float64{2, 3, 4, 5, 6, 8, 10, 12, 15, 20}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

// UnmatchedRoute labels requests that did not match a chi route
const UnmatchedRoute = "unmatched"
