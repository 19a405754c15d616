// Package memory provides an in-process PlantStore used for local development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/GardenBot_Go/internal/concurrency"
	"github.com/osse101/GardenBot_Go/internal/domain"
)

// PlantStore implements repository.PlantStore on a map.
// Writes to one user are serialized by a per-user lock; the map itself is guarded by mu.
type PlantStore struct {
	mu     sync.RWMutex
	plants map[string]domain.PlantRecord
	locks  *concurrency.LockManager
}

// NewPlantStore creates an empty store
func NewPlantStore() *PlantStore {
	return &PlantStore{
		plants: make(map[string]domain.PlantRecord),
		locks:  concurrency.NewLockManager(),
	}
}

// GetPlant returns a copy of the user's record
func (s *PlantStore) GetPlant(ctx context.Context, userID string) (*domain.PlantRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	rec, ok := s.plants[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clonePtr(rec), nil
}

// CreatePlant inserts a record unless one already exists for the user
func (s *PlantStore) CreatePlant(ctx context.Context, plant *domain.PlantRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	if err := domain.ValidatePlant(plant, zeroTime); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.plants[plant.UserID]; exists {
		return domain.ErrPlantAlreadyExists
	}
	s.plants[plant.UserID] = clone(*plant)
	return nil
}

// PatchPlant applies the patch under the user's lock
func (s *PlantStore) PatchPlant(ctx context.Context, userID string, patch domain.PlantPatch) (*domain.PlantRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	var updated domain.PlantRecord
	err := s.locks.WithLock(userID, func() error {
		s.mu.RLock()
		current, ok := s.plants[userID]
		s.mu.RUnlock()
		if !ok {
			return domain.ErrUserNotFound
		}
		if !patch.Check(current) {
			return domain.ErrPatchConflict
		}

		updated = patch.Apply(current)
		if err := domain.ValidatePlant(&updated, zeroTime); err != nil {
			return err
		}

		s.mu.Lock()
		s.plants[userID] = clone(updated)
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clonePtr(updated), nil
}

// ListPlantsByGroup returns copies of all records in the group
func (s *PlantStore) ListPlantsByGroup(ctx context.Context, groupID string) ([]domain.PlantRecord, error) {
	return s.list(ctx, func(p *domain.PlantRecord) bool { return p.GroupID == groupID })
}

// ListAllPlants returns copies of all records
func (s *PlantStore) ListAllPlants(ctx context.Context) ([]domain.PlantRecord, error) {
	return s.list(ctx, func(*domain.PlantRecord) bool { return true })
}

// Ping always succeeds for the in-memory store
func (s *PlantStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *PlantStore) list(ctx context.Context, keep func(*domain.PlantRecord) bool) ([]domain.PlantRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	plants := make([]domain.PlantRecord, 0, len(s.plants))
	for _, p := range s.plants {
		if keep(&p) {
			plants = append(plants, clone(p))
		}
	}
	return plants, nil
}

func clone(p domain.PlantRecord) domain.PlantRecord {
	if p.Achievements != nil {
		p.Achievements = append([]string(nil), p.Achievements...)
	}
	return p
}

func clonePtr(p domain.PlantRecord) *domain.PlantRecord {
	c := clone(p)
	return &c
}
