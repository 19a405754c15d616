package discord

// Friendly message constants for Discord responses
const (
	MsgNoPlant        = "🌰 **No Plant Yet**\nUse `/start` to plant your first seed."
	MsgCooldownActive = "⏳ **Whoa there!**\nYour plant isn't ready for that yet."
	MsgConcurrent     = "🌀 **Your plant was busy**\nSomeone else tended it at the same moment. Try again."
	MsgUnavailable    = "🛠️ **Garden Closed**\nThe garden server is unavailable. Try again shortly."
	MsgInvalidInput   = "❓ **Invalid Request**\nPlease check your inputs."

	MsgGenericError = "❌ Something went wrong."
)
