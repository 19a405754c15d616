package cooldown

import "github.com/osse101/GardenBot_Go/internal/domain"

// DefaultCooldownDuration applies to actions with neither an override nor a domain default
const DefaultCooldownDuration = domain.WaterCooldown

// errFmtOnCooldown renders e.g. "water on cooldown for 3h20m0s"
const errFmtOnCooldown = "%s on cooldown for %s"
