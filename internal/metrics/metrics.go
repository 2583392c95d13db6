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

// Simulation Metrics
var (
	TicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicksTotal,
			Help: HelpTextTicksTotal,
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	PaymentsSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePaymentsSettled,
			Help: HelpTextPaymentsSettled,
		},
	)

	GigsExecuted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGigsExecuted,
			Help: HelpTextGigsExecuted,
		},
	)

	StreamingPasses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreamingRevenue,
			Help: HelpTextStreamingRevenue,
		},
	)

	HousingUpkeepPasses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHousingUpkeepPasses,
			Help: HelpTextHousingUpkeepPasses,
		},
	)

	OperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOperationErrors,
			Help: HelpTextOperationErrors,
		},
		[]string{LabelOperation},
	)
)
