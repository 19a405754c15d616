// Package decay lowers the health of neglected plants on a fixed period.
package decay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/GardenBot_Go/internal/clock"
	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/logger"
	"github.com/osse101/GardenBot_Go/internal/metrics"
	"github.com/osse101/GardenBot_Go/internal/repository"
)

// Sweeper runs decay passes over every plant
type Sweeper interface {
	// RunSweep visits every plant once. Per-plant failures are collected in the report, never returned.
	RunSweep(ctx context.Context) domain.SweepReport
}

// Config holds the decay policy
type Config struct {
	NeglectAfter time.Duration
	Penalty      int
	HealthFloor  int
	Concurrency  int
	StoreTimeout time.Duration
}

// DefaultConfig returns the standard decay policy
func DefaultConfig() Config {
	return Config{
		NeglectAfter: domain.DecayNeglectAfter,
		Penalty:      domain.DecayPenalty,
		HealthFloor:  domain.DecayHealthFloor,
		Concurrency:  DefaultConcurrency,
		StoreTimeout: DefaultStoreTimeout,
	}
}

type sweeper struct {
	store repository.PlantStore
	clock clock.Clock
	cfg   Config
}

type outcome int

const (
	outcomeUntouched outcome = iota
	outcomeUpdated
	outcomeSkipped
	outcomeFailed
)

// NewSweeper creates a sweeper; zero config fields fall back to the defaults
func NewSweeper(store repository.PlantStore, clk clock.Clock, cfg Config) Sweeper {
	def := DefaultConfig()
	if cfg.NeglectAfter <= 0 {
		cfg.NeglectAfter = def.NeglectAfter
	}
	if cfg.Penalty <= 0 {
		cfg.Penalty = def.Penalty
	}
	if cfg.HealthFloor <= 0 {
		cfg.HealthFloor = def.HealthFloor
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = def.StoreTimeout
	}
	return &sweeper{store: store, clock: clk, cfg: cfg}
}

// RunSweep decays every neglected plant above the floor
func (s *sweeper) RunSweep(ctx context.Context) (report domain.SweepReport) {
	log := logger.FromContext(ctx)
	now := s.clock.Now().UTC().Truncate(time.Microsecond)
	report.StartedAt = now
	start := time.Now()
	log.Info(LogMsgSweepStarted)

	defer func() {
		report.Duration = time.Since(start)
		metrics.DecaySweepsTotal.Inc()
		metrics.DecaySweepDuration.Observe(report.Duration.Seconds())
		metrics.DecayLastSweepUnixtime.SetToCurrentTime()
		log.Info(LogMsgSweepCompleted,
			"scanned", report.Scanned,
			"updated", report.Updated,
			"skipped", report.Skipped,
			"errors", len(report.Errors),
			"duration", report.Duration)
	}()

	plants, err := s.listAll(ctx)
	if err != nil {
		log.Error(LogMsgSweepListFail, "error", err)
		report.Errors = append(report.Errors, err)
		return report
	}
	report.Scanned = len(plants)

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)

	for _, plant := range plants {
		g.Go(func() error {
			result, err := s.decayOne(ctx, plant, now)

			mu.Lock()
			defer mu.Unlock()
			switch result {
			case outcomeUpdated:
				report.Updated++
			case outcomeSkipped:
				report.Skipped++
			case outcomeFailed:
				report.Errors = append(report.Errors, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	metrics.DecayPlantsTotal.WithLabelValues(metrics.ResultUpdated).Add(float64(report.Updated))
	metrics.DecayPlantsTotal.WithLabelValues(metrics.ResultSkipped).Add(float64(report.Skipped))
	metrics.DecayPlantsTotal.WithLabelValues(metrics.ResultError).Add(float64(len(report.Errors)))
	return report
}

// decayOne applies the penalty when the plant is neglected and above the floor.
// The write requires both care timestamps and the floor condition to still hold;
// a care action landing in between wins and the plant is skipped.
func (s *sweeper) decayOne(ctx context.Context, plant domain.PlantRecord, now time.Time) (outcome, error) {
	if !s.isNeglected(plant, now) {
		return outcomeUntouched, nil
	}

	floor := s.cfg.HealthFloor
	lastWatered, lastFed := plant.LastWatered, plant.LastFed
	patch := domain.PlantPatch{
		HealthDelta:       -s.cfg.Penalty,
		HealthFloor:       floor,
		ExpectHealthAbove: &floor,
		ExpectLastWatered: &lastWatered,
		ExpectLastFed:     &lastFed,
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	updated, err := s.store.PatchPlant(ctx, plant.UserID, patch)
	switch {
	case err == nil:
		logger.FromContext(ctx).Debug(LogMsgPlantDecayed, "user_id", plant.UserID, "from", plant.Health, "to", updated.Health)
		return outcomeUpdated, nil
	case errors.Is(err, domain.ErrPatchConflict), errors.Is(err, domain.ErrUserNotFound):
		return outcomeSkipped, nil
	default:
		logger.FromContext(ctx).Warn(LogMsgPlantFailed, "user_id", plant.UserID, "error", err)
		return outcomeFailed, fmt.Errorf("%s %s: %w", ErrMsgDecayPlant, plant.UserID, err)
	}
}

func (s *sweeper) isNeglected(plant domain.PlantRecord, now time.Time) bool {
	return now.Sub(plant.LastCare()) >= s.cfg.NeglectAfter && plant.Health > s.cfg.HealthFloor
}

func (s *sweeper) listAll(ctx context.Context) ([]domain.PlantRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	plants, err := s.store.ListAllPlants(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgListPlants, err)
	}
	return plants, nil
}
