package cooldown

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// ErrOnCooldown is returned when a care action is still on cooldown.
// It is an expected outcome, not a failure: nothing was mutated.
type ErrOnCooldown struct {
	Action    domain.CareAction
	Remaining time.Duration
}

// HoursLeft returns the remaining cooldown rounded up to whole hours
func (e ErrOnCooldown) HoursLeft() int {
	if e.Remaining <= 0 {
		return 0
	}
	return int(math.Ceil(e.Remaining.Hours()))
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf(errFmtOnCooldown, e.Action, e.Remaining.Round(time.Second))
}

// Is allows errors.Is() to match ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
