package bootstrap

// Log files
const (
	logDirMode  = 0o755
	logFileMode = 0o644

	// session_2006-01-02_15-04-05.log; lexical order is chronological
	logFilePrefix     = "session_"
	logFileSuffix     = ".log"
	logFileTimeLayout = "2006-01-02_15-04-05"

	// MaxLogFiles counts the session file about to be opened
	MaxLogFiles = 10
)

// Startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting GardenBot API"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgMemoryStore         = "Using in-memory plant store; data is lost on restart"
	LogMsgStoreCloseFailed    = "Plant store close failed"
	LogMsgCatalogLoaded       = "Variety catalog loaded"
	LogMsgDecayScheduled      = "Decay sweep scheduled"
	LogMsgPruneLogFailed      = "Failed to remove old log file"
)

// Startup errors
const (
	ErrMsgCreateLogDir       = "create log directory"
	ErrMsgOpenLogFile        = "open log file"
	ErrMsgFailedConnectStore = "failed to connect plant store"
	ErrMsgUnknownBackend     = "unknown store backend"
	ErrMsgFailedLoadCatalog  = "failed to load variety catalog"
)

// Shutdown
const (
	LogMsgShuttingDown      = "Shutting down"
	LogMsgStopped           = "Shutdown complete"
	LogMsgServerStopFailed  = "HTTP server did not stop cleanly"
	LogMsgPoolStopFailed    = "Worker pool did not drain"
	LogMsgGardenStopFailed  = "Garden service did not drain in-flight care"
)
