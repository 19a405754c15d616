package cooldown

import (
	"time"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// Config holds cooldown policy configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps care actions to their durations
	// If not specified, defaults from domain package are used
	Cooldowns map[domain.CareAction]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action domain.CareAction) time.Duration {
	// Check custom overrides first
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok && duration > 0 {
			return duration
		}
	}

	switch action {
	case domain.ActionWater:
		return domain.WaterCooldown
	case domain.ActionFeed:
		return domain.FeedCooldown
	default:
		return DefaultCooldownDuration
	}
}

// Check reports whether action is still on cooldown at now, given when it was last used.
// The remaining duration is zero when the action is available.
func (c *Config) Check(action domain.CareAction, lastUsed, now time.Time) (bool, time.Duration) {
	if c.DevMode || lastUsed.IsZero() {
		return false, 0
	}

	duration := c.GetCooldownDuration(action)
	elapsed := now.Sub(lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}
	return false, 0
}

// NextAvailable returns when the action can next be performed
func (c *Config) NextAvailable(action domain.CareAction, lastUsed time.Time) time.Time {
	if c.DevMode {
		return lastUsed
	}
	return lastUsed.Add(c.GetCooldownDuration(action))
}
