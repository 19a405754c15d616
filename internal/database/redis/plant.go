// Package redis implements the plant store on redis.
// Each record is a JSON value under its own key; group and global membership are sets.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// PlantRepository implements repository.PlantStore on redis
type PlantRepository struct {
	rdb    *goredis.Client
	prefix string
}

// NewPlantRepository creates a repository; an empty prefix uses DefaultKeyPrefix
func NewPlantRepository(rdb *goredis.Client, prefix string) *PlantRepository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &PlantRepository{rdb: rdb, prefix: prefix}
}

func (r *PlantRepository) plantKey(userID string) string { return r.prefix + plantKeyPart + userID }
func (r *PlantRepository) groupKey(groupID string) string { return r.prefix + groupKeyPart + groupID }
func (r *PlantRepository) allKey() string                 { return r.prefix + allPlantsKeyPart }

// GetPlant retrieves a user's plant
func (r *PlantRepository) GetPlant(ctx context.Context, userID string) (*domain.PlantRecord, error) {
	raw, err := r.rdb.Get(ctx, r.plantKey(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, storeError(ErrMsgFailedToGetPlant, err)
	}
	return decodePlant(raw)
}

// CreatePlant writes the record and its set memberships in one MULTI block.
// The record key is watched so a concurrent creator makes this transaction fail.
func (r *PlantRepository) CreatePlant(ctx context.Context, plant *domain.PlantRecord) error {
	if err := domain.ValidatePlant(plant, zeroTime); err != nil {
		return err
	}
	raw, err := json.Marshal(plant)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodePlant, err)
	}

	key := r.plantKey(plant.UserID)
	err = r.rdb.Watch(ctx, func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrPlantAlreadyExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, raw, 0)
			pipe.SAdd(ctx, r.groupKey(plant.GroupID), plant.UserID)
			pipe.SAdd(ctx, r.allKey(), plant.UserID)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrPlantAlreadyExists), errors.Is(err, goredis.TxFailedErr):
		return domain.ErrPlantAlreadyExists
	default:
		return storeError(ErrMsgFailedToCreatePlant, err)
	}
}

// PatchPlant reads, checks and rewrites the record under WATCH.
// A transaction aborted by a concurrent write is re-run so preconditions are evaluated against the newer value.
func (r *PlantRepository) PatchPlant(ctx context.Context, userID string, patch domain.PlantPatch) (*domain.PlantRecord, error) {
	key := r.plantKey(userID)

	var updated domain.PlantRecord
	txf := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, goredis.Nil) {
			return domain.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		current, err := decodePlant(raw)
		if err != nil {
			return err
		}
		if !patch.Check(*current) {
			return domain.ErrPatchConflict
		}

		updated = patch.Apply(*current)
		if err := domain.ValidatePlant(&updated, zeroTime); err != nil {
			return err
		}
		out, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEncodePlant, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < MaxTxRetries; attempt++ {
		err := r.rdb.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return &updated, nil
		case errors.Is(err, goredis.TxFailedErr):
			if err := sleepCtx(ctx, time.Duration(attempt+1)*txRetryBackoff); err != nil {
				return nil, storeError(ErrMsgFailedToPatchPlant, err)
			}
			continue
		case errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrPatchConflict),
			errors.Is(err, domain.ErrInvalidPlant):
			return nil, err
		default:
			return nil, storeError(ErrMsgFailedToPatchPlant, err)
		}
	}
	return nil, storeError(ErrMsgFailedToPatchPlant, errors.New(ErrMsgTooManyRetries))
}

// ListPlantsByGroup retrieves every plant in a group
func (r *PlantRepository) ListPlantsByGroup(ctx context.Context, groupID string) ([]domain.PlantRecord, error) {
	return r.listMembers(ctx, r.groupKey(groupID))
}

// ListAllPlants retrieves every plant
func (r *PlantRepository) ListAllPlants(ctx context.Context) ([]domain.PlantRecord, error) {
	return r.listMembers(ctx, r.allKey())
}

// Ping checks redis connectivity
func (r *PlantRepository) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return storeError(ErrMsgFailedToPing, err)
	}
	return nil
}

func (r *PlantRepository) listMembers(ctx context.Context, setKey string) ([]domain.PlantRecord, error) {
	ids, err := r.rdb.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, storeError(ErrMsgFailedToListPlants, err)
	}

	plants := make([]domain.PlantRecord, 0, len(ids))
	if len(ids) == 0 {
		return plants, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.plantKey(id)
	}

	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storeError(ErrMsgFailedToListPlants, err)
	}

	log := logger.FromContext(ctx)
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		plant, err := decodePlant([]byte(s))
		if err != nil {
			log.Warn(LogMsgSkippedCorruptPlant, "user_id", ids[i], "error", err)
			continue
		}
		plants = append(plants, *plant)
	}
	return plants, nil
}

func decodePlant(raw []byte) (*domain.PlantRecord, error) {
	var p domain.PlantRecord
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, storeError(ErrMsgFailedToDecodePlant, err)
	}
	return &p, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func storeError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, msg, err)
}
