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

// Simulation metric names
const (
	MetricNameTicksTotal          = "ticks_total"
	MetricNameTickDuration        = "tick_duration_seconds"
	MetricNamePaymentsSettled     = "job_payments_settled_total"
	MetricNameGigsExecuted        = "gigs_executed_total"
	MetricNameStreamingRevenue    = "streaming_passes_total"
	MetricNameHousingUpkeepPasses = "housing_upkeep_passes_total"
	MetricNameOperationErrors     = "operation_errors_total"
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

// Simulation metric help text
const (
	HelpTextTicksTotal          = "Total number of idle progression ticks run"
	HelpTextTickDuration        = "Tick pass latency in seconds"
	HelpTextPaymentsSettled     = "Total number of job payments settled"
	HelpTextGigsExecuted        = "Total number of gigs executed"
	HelpTextStreamingRevenue    = "Total number of weekly streaming passes run"
	HelpTextHousingUpkeepPasses = "Total number of housing upkeep passes run"
	HelpTextOperationErrors     = "Total number of failed engine operations"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets covers typical request latencies
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers the in-memory tick pass
var TickLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}
