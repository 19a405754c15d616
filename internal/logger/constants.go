package logger

// Accepted LOG_LEVEL values; "warning" is an alias for warn
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Environments that change logger defaults
const (
	EnvDevelopment = "dev"
	EnvProduction  = "prod"
)

// Fallbacks for empty config fields
const (
	FallbackServiceName = "garden-bot"
	FallbackVersion     = "dev"
)

// Attribute keys stamped on every record
const (
	AttrService     = "service"
	AttrVersion     = "version"
	AttrEnvironment = "environment"
	AttrRequestID   = "request_id"
	AttrComponent   = "component"
)
