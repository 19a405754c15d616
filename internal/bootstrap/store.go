package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/database"
	"github.com/osse101/GardenBot_Go/internal/database/memory"
	"github.com/osse101/GardenBot_Go/internal/database/postgres"
	"github.com/osse101/GardenBot_Go/internal/database/redis"
	"github.com/osse101/GardenBot_Go/internal/repository"
)

// Store is the selected plant store backend and its connection teardown
type Store struct {
	repository.PlantStore
	Backend string
	close   func()
}

// Close releases the backend connection. Safe on a nil close func.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// InitializeStore connects the backend named by STORE_BACKEND.
// For postgres, migrations run first when MIGRATE_ON_START is set.
func InitializeStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		slog.Warn(LogMsgMemoryStore)
		return &Store{PlantStore: memory.NewPlantStore(), Backend: cfg.StoreBackend}, nil

	case config.StoreBackendPostgres:
		pool, err := database.Connect(ctx, database.PoolConfig{
			ConnString:      cfg.GetDBConnString(),
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectStore, err)
		}
		if cfg.MigrateOnStart {
			if err := database.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Store{PlantStore: postgres.NewPlantRepository(pool), Backend: cfg.StoreBackend, close: pool.Close}, nil

	case config.StoreBackendRedis:
		rdb, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectStore, err)
		}
		closeFn := func() {
			if err := rdb.Close(); err != nil {
				slog.Error(LogMsgStoreCloseFailed, "error", err)
			}
		}
		return &Store{PlantStore: redis.NewPlantRepository(rdb, cfg.RedisPrefix), Backend: cfg.StoreBackend, close: closeFn}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StoreBackend)
	}
}
