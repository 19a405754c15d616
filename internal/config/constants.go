package config

const (
	ErrMsgParseEnv            = "failed to parse environment"
	ErrMsgUnknownStoreBackend = "unknown STORE_BACKEND"
	ErrMsgInvalidPort         = "invalid PORT value"
	ErrMsgNonPositiveDuration = "duration must be positive"
)

const (
	ErrMsgDiscordTokenRequired = "DISCORD_TOKEN is required"
	ErrMsgDiscordAppIDRequired = "DISCORD_APP_ID is required"
)
