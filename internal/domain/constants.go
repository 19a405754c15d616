package domain

import "time"

// Health bounds
const (
	MinHealth     = 0
	MaxHealth     = 100
	InitialHealth = 100
)

// InitialHeight is the height of a freshly planted seed
const InitialHeight = 1

// DefaultDisplayNamePrefix is used when a user has no display name
const DefaultDisplayNamePrefix = "Gardener"

// Care policy
const (
	WaterCooldown    = 4 * time.Hour
	WaterGrowthMin   = 1
	WaterGrowthMax   = 3
	WaterHealthBonus = 10

	FeedCooldown    = 6 * time.Hour
	FeedGrowthMin   = 2
	FeedGrowthMax   = 5
	FeedHealthBonus = 20
)

// Decay policy
const (
	DecayInterval     = 12 * time.Hour
	DecayNeglectAfter = 12 * time.Hour
	DecayPenalty      = 10
	DecayHealthFloor  = 20
)

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)
