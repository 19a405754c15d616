package domain

import (
	"time"
)

// CareAction identifies a care action performed on a plant
type CareAction string

const (
	ActionWater CareAction = "water"
	ActionFeed  CareAction = "feed"
)

// PlantRecord is the persisted state of a user's plant.
// One record exists per user; it is created lazily on first contact.
type PlantRecord struct {
	UserID       string    `json:"user_id" validate:"required,max=64"`
	DisplayName  string    `json:"display_name" validate:"required,max=100"`
	GroupID      string    `json:"group_id" validate:"required,max=64"`
	Variety      string    `json:"variety" validate:"required,max=100"`
	Height       int       `json:"height" validate:"gte=0"`
	Health       int       `json:"health" validate:"gte=0,lte=100"`
	LastWatered  time.Time `json:"last_watered" validate:"required"`
	LastFed      time.Time `json:"last_fed" validate:"required"`
	PlantedAt    time.Time `json:"planted_at" validate:"required"`
	WaterCount   int       `json:"water_count" validate:"gte=0"`
	FeedCount    int       `json:"feed_count" validate:"gte=0"`
	TotalGrowth  int       `json:"total_growth" validate:"gte=0"`
	Achievements []string  `json:"achievements"`
}

// LastCare returns the most recent care timestamp of either kind
func (p *PlantRecord) LastCare() time.Time {
	if p.LastFed.After(p.LastWatered) {
		return p.LastFed
	}
	return p.LastWatered
}

// LastCareFor returns the stored timestamp for the given action
func (p *PlantRecord) LastCareFor(action CareAction) time.Time {
	if action == ActionFeed {
		return p.LastFed
	}
	return p.LastWatered
}

// PlantPatch is a field-level delta applied atomically by a store.
// Zero values leave a field untouched. Expect* fields are preconditions checked
// against the stored record inside the same atomic step; when one fails the
// store returns ErrPatchConflict and applies nothing.
type PlantPatch struct {
	HeightDelta      int
	TotalGrowthDelta int
	WaterCountDelta  int
	FeedCountDelta   int

	// HealthDelta is added to health and the result clamped to [HealthFloor, HealthCeil]
	HealthDelta int
	HealthFloor int
	HealthCeil  int

	LastWatered *time.Time
	LastFed     *time.Time

	ExpectLastWatered *time.Time
	ExpectLastFed     *time.Time
	// ExpectHealthAbove requires stored health to be strictly greater than the value
	ExpectHealthAbove *int
}

// Apply applies the patch to a copy of the record and returns it.
// Preconditions are not evaluated here; see Check.
func (p PlantPatch) Apply(rec PlantRecord) PlantRecord {
	rec.Height += p.HeightDelta
	rec.TotalGrowth += p.TotalGrowthDelta
	rec.WaterCount += p.WaterCountDelta
	rec.FeedCount += p.FeedCountDelta

	if p.HealthDelta != 0 {
		rec.Health = ClampHealth(rec.Health+p.HealthDelta, p.HealthFloor, p.HealthCeil)
	}
	if p.LastWatered != nil {
		rec.LastWatered = *p.LastWatered
	}
	if p.LastFed != nil {
		rec.LastFed = *p.LastFed
	}
	return rec
}

// Check reports whether the record satisfies the patch preconditions
func (p PlantPatch) Check(rec PlantRecord) bool {
	if p.ExpectLastWatered != nil && !rec.LastWatered.Equal(*p.ExpectLastWatered) {
		return false
	}
	if p.ExpectLastFed != nil && !rec.LastFed.Equal(*p.ExpectLastFed) {
		return false
	}
	if p.ExpectHealthAbove != nil && rec.Health <= *p.ExpectHealthAbove {
		return false
	}
	return true
}

// ClampHealth bounds health to [floor, ceil] and to the global [MinHealth, MaxHealth]
func ClampHealth(health, floor, ceil int) int {
	if ceil <= 0 || ceil > MaxHealth {
		ceil = MaxHealth
	}
	if floor < MinHealth {
		floor = MinHealth
	}
	if health > ceil {
		return ceil
	}
	if health < floor {
		return floor
	}
	return health
}

// StageInfo describes a growth stage band
type StageInfo struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	MinHeight int    `json:"min_height"`
}

// CareResult is returned by a successful water or feed action
type CareResult struct {
	Action    CareAction `json:"action"`
	Growth    int        `json:"growth"`
	NewHeight int        `json:"new_height"`
	NewHealth int        `json:"new_health"`
	Stage     StageInfo  `json:"stage"`
}

// PlantStatus is the read view of a plant shown to its owner
type PlantStatus struct {
	Plant            PlantRecord `json:"plant"`
	Stage            StageInfo   `json:"stage"`
	DaysSincePlanted int         `json:"days_since_planted"`
	NextWaterAt      time.Time   `json:"next_water_at"`
	NextFeedAt       time.Time   `json:"next_feed_at"`
}

// LeaderboardEntry is one ranked row of a group leaderboard
type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Variety     string    `json:"variety"`
	Height      int       `json:"height"`
	Stage       StageInfo `json:"stage"`
}

// SweepReport summarizes one decay sweep
type SweepReport struct {
	Scanned   int           `json:"scanned"`
	Updated   int           `json:"updated"`
	Skipped   int           `json:"skipped"`
	Errors    []error       `json:"-"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// ErrorMessages returns the sweep errors as strings for serialization
func (r SweepReport) ErrorMessages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// AchievementGoal describes an achievement shown to players.
// Achievements are displayed with progress counters only; nothing awards them.
type AchievementGoal struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// GardenInfo is the static help data for the game rules
type GardenInfo struct {
	Stages        []StageInfo       `json:"stages"`
	WaterCooldown time.Duration     `json:"water_cooldown"`
	FeedCooldown  time.Duration     `json:"feed_cooldown"`
	Varieties     []string          `json:"varieties"`
	Achievements  []AchievementGoal `json:"achievements"`
}
