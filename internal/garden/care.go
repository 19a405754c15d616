package garden

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/GardenBot_Go/internal/cooldown"
	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/logger"
	"github.com/osse101/GardenBot_Go/internal/metrics"
)

// carePolicy is the growth and health effect of one care action
type carePolicy struct {
	growthMin   int
	growthMax   int
	healthBonus int
}

var carePolicies = map[domain.CareAction]carePolicy{
	domain.ActionWater: {growthMin: domain.WaterGrowthMin, growthMax: domain.WaterGrowthMax, healthBonus: domain.WaterHealthBonus},
	domain.ActionFeed:  {growthMin: domain.FeedGrowthMin, growthMax: domain.FeedGrowthMax, healthBonus: domain.FeedHealthBonus},
}

// Water applies a watering action
func (s *service) Water(ctx context.Context, userID string) (*domain.CareResult, error) {
	return s.Care(ctx, userID, domain.ActionWater)
}

// Feed applies a feeding action
func (s *service) Feed(ctx context.Context, userID string) (*domain.CareResult, error) {
	return s.Care(ctx, userID, domain.ActionFeed)
}

// Care checks the action's cooldown against the stored timestamp and applies it.
// The write is conditional on that timestamp being unchanged, so two concurrent
// actions of the same kind cannot both pass the same cooldown window.
func (s *service) Care(ctx context.Context, userID string, action domain.CareAction) (*domain.CareResult, error) {
	defer s.track()()
	log := logger.FromContext(ctx)

	policy, ok := carePolicies[action]
	if !ok {
		return nil, domain.ErrUnknownCareAction
	}

	plant, err := s.getPlant(ctx, userID)
	if err != nil {
		recordCareOutcome(action, err)
		return nil, err
	}

	now := s.now()
	last := plant.LastCareFor(action)
	if onCooldown, remaining := s.cooldowns.Check(action, last, now); onCooldown {
		cdErr := cooldown.ErrOnCooldown{Action: action, Remaining: remaining}
		log.Debug(LogMsgCareOnCooldown, "user_id", userID, "action", action, "hours_left", cdErr.HoursLeft())
		recordCareOutcome(action, cdErr)
		return nil, cdErr
	}

	growth := drawInclusive(s.rng, policy.growthMin, policy.growthMax)
	updated, err := s.patchPlant(ctx, userID, carePatch(action, policy, growth, now, last))
	if errors.Is(err, domain.ErrPatchConflict) {
		err = s.resolveCareConflict(ctx, userID, action)
		log.Info(LogMsgCareConflict, "user_id", userID, "action", action, "result", err)
	}
	if err != nil {
		recordCareOutcome(action, err)
		return nil, err
	}

	recordCareOutcome(action, nil)
	metrics.GrowthTotal.WithLabelValues(string(action)).Add(float64(growth))
	log.Info(LogMsgCareApplied, "user_id", userID, "action", action, "growth", growth, "height", updated.Height, "health", updated.Health)

	return &domain.CareResult{
		Action:    action,
		Growth:    growth,
		NewHeight: updated.Height,
		NewHealth: updated.Health,
		Stage:     Stage(updated.Height),
	}, nil
}

// resolveCareConflict classifies a lost conditional write without retrying it.
// The winner usually moved the timestamp forward, which puts this request on cooldown.
func (s *service) resolveCareConflict(ctx context.Context, userID string, action domain.CareAction) error {
	plant, err := s.getPlant(ctx, userID)
	if err != nil {
		return err
	}
	if onCooldown, remaining := s.cooldowns.Check(action, plant.LastCareFor(action), s.now()); onCooldown {
		return cooldown.ErrOnCooldown{Action: action, Remaining: remaining}
	}
	return domain.ErrConcurrentUpdate
}

func carePatch(action domain.CareAction, policy carePolicy, growth int, now, expect time.Time) domain.PlantPatch {
	patch := domain.PlantPatch{
		HeightDelta:      growth,
		TotalGrowthDelta: growth,
		HealthDelta:      policy.healthBonus,
		HealthCeil:       domain.MaxHealth,
	}

	switch action {
	case domain.ActionFeed:
		patch.FeedCountDelta = 1
		patch.LastFed = &now
		patch.ExpectLastFed = &expect
	default:
		patch.WaterCountDelta = 1
		patch.LastWatered = &now
		patch.ExpectLastWatered = &expect
	}
	return patch
}

func recordCareOutcome(action domain.CareAction, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrOnCooldown):
		outcome = metrics.OutcomeCooldown
	case errors.Is(err, domain.ErrUserNotFound):
		outcome = metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrConcurrentUpdate):
		outcome = metrics.OutcomeConcurrentUpdate
	default:
		outcome = metrics.OutcomeError
	}
	metrics.CareActionsTotal.WithLabelValues(string(action), outcome).Inc()
}
