package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameAuthFailuresTotal    = "http_auth_failures_total"
	MetricNameRateLimitedTotal     = "http_rate_limited_total"
)

// Garden metric names
const (
	MetricNameCareActionsTotal   = "garden_care_actions_total"
	MetricNameGrowthTotal        = "garden_growth_units_total"
	MetricNamePlantsCreatedTotal = "garden_plants_created_total"
	MetricNameStoreErrorsTotal   = "garden_store_errors_total"
)

// Decay metric names
const (
	MetricNameDecaySweepsTotal       = "garden_decay_sweeps_total"
	MetricNameDecayPlantsTotal       = "garden_decay_plants_total"
	MetricNameDecaySweepDuration     = "garden_decay_sweep_duration_seconds"
	MetricNameDecayLastSweepUnixtime = "garden_decay_last_sweep_timestamp_seconds"
)

// Bot metric names
const (
	MetricNameBotCommandsTotal = "discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextAuthFailuresTotal    = "Total number of requests rejected for a bad API key"
	HelpTextRateLimitedTotal     = "Total number of requests rejected by the per-client rate limit"
)

// Garden metric help text
const (
	HelpTextCareActionsTotal   = "Total number of care actions by action and outcome"
	HelpTextGrowthTotal        = "Total growth units applied by care actions"
	HelpTextPlantsCreatedTotal = "Total number of plants created"
	HelpTextStoreErrorsTotal   = "Total number of failed store operations"
)

// Decay metric help text
const (
	HelpTextDecaySweepsTotal       = "Total number of decay sweeps run"
	HelpTextDecayPlantsTotal       = "Plants visited by decay sweeps by result"
	HelpTextDecaySweepDuration     = "Decay sweep duration in seconds"
	HelpTextDecayLastSweepUnixtime = "Unix time the last decay sweep finished"
)

// Bot metric help text
const (
	HelpTextBotCommandsTotal = "Slash commands dispatched by the Discord bot"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelAction    = "action"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelCommand   = "command"
)

// Care outcomes
const (
	OutcomeSuccess          = "success"
	OutcomeCooldown         = "cooldown"
	OutcomeNotFound         = "not_found"
	OutcomeConcurrentUpdate = "concurrent_update"
	OutcomeError            = "error"
)

// Decay results
const (
	ResultUpdated = "updated"
	ResultSkipped = "skipped"
	ResultError   = "error"
)

// UnmatchedRoute labels requests that did not match a registered route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SweepLatencyBuckets covers sweeps from a handful of plants to full-store scans
var SweepLatencyBuckets = []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 300}
