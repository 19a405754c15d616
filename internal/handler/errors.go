package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgBodyTooLarge          = "Request body too large"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."
	ErrMsgNoPlantError          = "You don't have a plant yet. Use /start to plant a seed."
	ErrMsgOnCooldownError       = "Action is on cooldown. Try again later"
	ErrMsgConcurrentUpdateError = "Your plant was busy. Please try again."
	ErrMsgStoreUnreachable      = "plant store unreachable"
)

// Success messages for API responses
const (
	MsgPlantCreated  = "A new seed has been planted"
	MsgPlantExisting = "You already have a plant"
	MsgDecayComplete = "Decay sweep complete"
)

// Operation names used in logs
const (
	OpStartPlant  = "Start plant"
	OpGetPlant    = "Get plant"
	OpWater       = "Water plant"
	OpFeed        = "Feed plant"
	OpLeaderboard = "Leaderboard"
	OpDecaySweep  = "Decay sweep"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response"
	LogMsgReadinessFailed = "Readiness check failed"

	LogMsgCareApplied      = "Care action applied"
	LogMsgManualSweepDone  = "Manual decay sweep finished"
	LogMsgUndecodableBody  = "Undecodable request body"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgCooldownRejected = "Rejected by cooldown"
	LogMsgServiceFailed    = "Service call failed"
)
