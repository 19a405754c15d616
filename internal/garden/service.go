// Package garden implements the plant rules: creation, care under cooldowns,
// stage classification and group leaderboards.
package garden

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/osse101/GardenBot_Go/internal/clock"
	"github.com/osse101/GardenBot_Go/internal/cooldown"
	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/logger"
	"github.com/osse101/GardenBot_Go/internal/metrics"
	"github.com/osse101/GardenBot_Go/internal/repository"
)

// maxDisplayNameRunes matches the store's display_name limit
const maxDisplayNameRunes = 100

// Service defines the garden business logic
type Service interface {
	// GetOrCreate returns the user's plant, planting one on first contact.
	// The bool reports whether this call created it.
	GetOrCreate(ctx context.Context, userID, displayName, groupID string) (*domain.PlantRecord, bool, error)

	// GetPlant returns the plant with its derived stage, age and next care times
	GetPlant(ctx context.Context, userID string) (*domain.PlantStatus, error)

	// Water and Feed apply a care action or return cooldown.ErrOnCooldown
	Water(ctx context.Context, userID string) (*domain.CareResult, error)
	Feed(ctx context.Context, userID string) (*domain.CareResult, error)
	Care(ctx context.Context, userID string, action domain.CareAction) (*domain.CareResult, error)

	// Leaderboard returns the group's plants ranked by height
	Leaderboard(ctx context.Context, groupID string, limit int) ([]domain.LeaderboardEntry, error)

	// Info returns the game rules for help screens
	Info() domain.GardenInfo

	Shutdown(ctx context.Context) error
}

// Config holds the tunable parts of the garden rules
type Config struct {
	Cooldown     cooldown.Config
	StoreTimeout time.Duration
}

type service struct {
	store        repository.PlantStore
	clock        clock.Clock
	rng          RandomSource
	catalog      *Catalog
	cooldowns    cooldown.Config
	storeTimeout time.Duration
	wg           sync.WaitGroup
}

// NewService creates a new garden service
func NewService(
	store repository.PlantStore,
	clk clock.Clock,
	rng RandomSource,
	catalog *Catalog,
	cfg Config,
) Service {
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}
	return &service{
		store:        store,
		clock:        clk,
		rng:          rng,
		catalog:      catalog,
		cooldowns:    cfg.Cooldown,
		storeTimeout: cfg.StoreTimeout,
	}
}

// GetOrCreate returns the existing plant or plants a new one.
// A lost creation race is resolved by reading the winner's record.
func (s *service) GetOrCreate(ctx context.Context, userID, displayName, groupID string) (*domain.PlantRecord, bool, error) {
	defer s.track()()
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(groupID) == "" {
		return nil, false, fmt.Errorf("%w: user and group are required", domain.ErrInvalidInput)
	}

	existing, err := s.getPlant(ctx, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, err
	}

	plant := s.newPlant(userID, displayName, groupID)
	if err := domain.ValidatePlant(plant, s.clock.Now()); err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	err = s.createPlant(ctx, plant)
	if errors.Is(err, domain.ErrPlantAlreadyExists) {
		log.Info(LogMsgCreateRaceResolved, "user_id", userID)
		winner, err := s.getPlant(ctx, userID)
		return winner, false, err
	}
	if err != nil {
		return nil, false, err
	}

	metrics.PlantsCreatedTotal.Inc()
	log.Info(LogMsgPlantCreated, "user_id", userID, "group_id", groupID, "variety", plant.Variety)
	return plant, true, nil
}

// GetPlant returns the plant status view
func (s *service) GetPlant(ctx context.Context, userID string) (*domain.PlantStatus, error) {
	defer s.track()()

	plant, err := s.getPlant(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	days := 0
	if age := now.Sub(plant.PlantedAt); age > 0 {
		days = int(age.Hours()) / hoursPerDay
	}

	return &domain.PlantStatus{
		Plant:            *plant,
		Stage:            Stage(plant.Height),
		DaysSincePlanted: days,
		NextWaterAt:      s.cooldowns.NextAvailable(domain.ActionWater, plant.LastWatered),
		NextFeedAt:       s.cooldowns.NextAvailable(domain.ActionFeed, plant.LastFed),
	}, nil
}

// Info returns the rules shown by help screens
func (s *service) Info() domain.GardenInfo {
	return domain.GardenInfo{
		Stages:        Stages(),
		WaterCooldown: s.cooldowns.GetCooldownDuration(domain.ActionWater),
		FeedCooldown:  s.cooldowns.GetCooldownDuration(domain.ActionFeed),
		Varieties:     slices.Clone(s.catalog.Varieties),
		Achievements:  AchievementGoals(),
	}
}

// Shutdown waits for in-flight requests to finish
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", ErrMsgShutdownTimed, ctx.Err())
	}
}

// newPlant builds a fresh record. Care timestamps are set one window back so
// the first water and feed are available immediately after planting.
func (s *service) newPlant(userID, displayName, groupID string) *domain.PlantRecord {
	now := s.now()
	return &domain.PlantRecord{
		UserID:       userID,
		DisplayName:  normalizeDisplayName(displayName, userID),
		GroupID:      groupID,
		Variety:      s.catalog.Pick(s.rng),
		Height:       domain.InitialHeight,
		Health:       domain.InitialHealth,
		LastWatered:  now.Add(-s.cooldowns.GetCooldownDuration(domain.ActionWater)),
		LastFed:      now.Add(-s.cooldowns.GetCooldownDuration(domain.ActionFeed)),
		PlantedAt:    now,
		Achievements: []string{},
	}
}

func normalizeDisplayName(name, userID string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.DefaultDisplayNamePrefix + userID
	}
	if utf8.RuneCountInString(name) > maxDisplayNameRunes {
		name = string([]rune(name)[:maxDisplayNameRunes])
	}
	return name
}

// now is truncated to microseconds so timestamps compare equal after a store round-trip
func (s *service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

func (s *service) track() func() {
	s.wg.Add(1)
	return s.wg.Done
}

// ============================================================================
// Store access, bounded by the store timeout
// ============================================================================

func (s *service) getPlant(ctx context.Context, userID string) (*domain.PlantRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	plant, err := s.store.GetPlant(ctx, userID)
	if err != nil {
		return nil, s.storeError(ctx, opGet, ErrMsgGetPlant, err)
	}
	return plant, nil
}

func (s *service) createPlant(ctx context.Context, plant *domain.PlantRecord) error {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.store.CreatePlant(ctx, plant); err != nil {
		return s.storeError(ctx, opCreate, ErrMsgCreatePlant, err)
	}
	return nil
}

func (s *service) patchPlant(ctx context.Context, userID string, patch domain.PlantPatch) (*domain.PlantRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	plant, err := s.store.PatchPlant(ctx, userID, patch)
	if err != nil {
		return nil, s.storeError(ctx, opPatch, ErrMsgPatchPlant, err)
	}
	return plant, nil
}

func (s *service) listGroup(ctx context.Context, groupID string) ([]domain.PlantRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	plants, err := s.store.ListPlantsByGroup(ctx, groupID)
	if err != nil {
		return nil, s.storeError(ctx, opList, ErrMsgListPlants, err)
	}
	return plants, nil
}

// storeError passes contract errors through and reports everything else as ErrStoreUnavailable
func (s *service) storeError(ctx context.Context, op, msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPlantAlreadyExists),
		errors.Is(err, domain.ErrPatchConflict),
		errors.Is(err, domain.ErrInvalidPlant):
		return err
	}

	metrics.StoreErrorsTotal.WithLabelValues(op).Inc()
	logger.FromContext(ctx).Error(LogMsgStoreFailed, "operation", op, "error", err)
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, domain.ErrStoreUnavailable, err)
}
