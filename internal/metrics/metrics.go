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

	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailuresTotal,
			Help: HelpTextAuthFailuresTotal,
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedTotal,
			Help: HelpTextRateLimitedTotal,
		},
	)
)

// Garden Metrics
var (
	CareActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCareActionsTotal,
			Help: HelpTextCareActionsTotal,
		},
		[]string{LabelAction, LabelOutcome},
	)

	GrowthTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGrowthTotal,
			Help: HelpTextGrowthTotal,
		},
		[]string{LabelAction},
	)

	PlantsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantsCreatedTotal,
			Help: HelpTextPlantsCreatedTotal,
		},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreErrorsTotal,
			Help: HelpTextStoreErrorsTotal,
		},
		[]string{LabelOperation},
	)
)

// Decay Metrics
var (
	DecaySweepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDecaySweepsTotal,
			Help: HelpTextDecaySweepsTotal,
		},
	)

	DecayPlantsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDecayPlantsTotal,
			Help: HelpTextDecayPlantsTotal,
		},
		[]string{LabelResult},
	)

	DecaySweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDecaySweepDuration,
			Help:    HelpTextDecaySweepDuration,
			Buckets: SweepLatencyBuckets,
		},
	)

	DecayLastSweepUnixtime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDecayLastSweepUnixtime,
			Help: HelpTextDecayLastSweepUnixtime,
		},
	)
)

// Bot Metrics
var (
	BotCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBotCommandsTotal,
			Help: HelpTextBotCommandsTotal,
		},
		[]string{LabelCommand},
	)
)
