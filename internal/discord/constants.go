package discord

import "time"

// API client defaults
const (
	DefaultAPITimeout = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// Registered-user cache defaults
const (
	DefaultRegisteredCacheSize = 5000
	DefaultRegisteredCacheTTL  = 30 * time.Minute
)

// Command timing
const (
	CommandTimeout        = 15 * time.Second
	HealthProbeTimeout    = 2 * time.Second
	HTTPShutdownTimeout   = 5 * time.Second
	HTTPReadHeaderTimeout = 5 * time.Second
	DirectMessageGroupID  = "dm:"
)

// Embed colors
const (
	ColorGreen  = 0x2ecc71
	ColorBlue   = 0x3498db
	ColorGold   = 0xf1c40f
	ColorTeal   = 0x1abc9c
	ColorPurple = 0x9b59b6
	ColorRed    = 0xe74c3c
)

// Embed footer
const FooterText = "GardenBot"

// Health bar
const (
	HealthBarSegments = 10
	HealthBarFull     = "🟩"
	HealthBarEmpty    = "⬜"
)

// Medals for the top three leaderboard places
var Medals = []string{"🥇", "🥈", "🥉"}

// Internal server log messages
const (
	LogMsgHealthServerStarting   = "Starting Discord internal HTTP server"
	LogMsgHealthServerFailed     = "Discord internal HTTP server failed"
	LogMsgHealthServerStopFailed = "Discord internal HTTP server shutdown failed"
)

// Bot lifecycle log messages
const (
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgBotReady           = "Bot is ready"
	LogMsgBotStopping        = "Shutting down Discord bot"
	LogMsgGatewayCloseFailed = "Error closing Discord session"
	LogMsgDrainTimedOut      = "Gave up waiting for in-flight commands"
	LogMsgHandlerPanic       = "Command handler panicked"
)

// Command sync log messages
const (
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsDiff      = "Registered commands differ"
	LogMsgCommandsUpdated   = "Commands updated"
)
