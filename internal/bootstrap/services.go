package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/GardenBot_Go/internal/clock"
	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/cooldown"
	"github.com/osse101/GardenBot_Go/internal/decay"
	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/repository"
	"github.com/osse101/GardenBot_Go/internal/scheduler"
	"github.com/osse101/GardenBot_Go/internal/worker"
)

// Services holds the application services built on one store
type Services struct {
	Garden    garden.Service
	Sweeper   decay.Sweeper
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// LoadCatalog returns the override catalog when a path is configured, else the embedded one
func LoadCatalog(path string) (*garden.Catalog, error) {
	if path == "" {
		return garden.DefaultCatalog()
	}
	catalog, err := garden.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedLoadCatalog, path, err)
	}
	slog.Info(LogMsgCatalogLoaded, "path", path, "varieties", len(catalog.Varieties))
	return catalog, nil
}

// InitializeServices builds the garden service and decay sweeper
func InitializeServices(cfg *config.Config, store repository.PlantStore, clk clock.Clock) (*Services, error) {
	catalog, err := LoadCatalog(cfg.VarietyCatalogPath)
	if err != nil {
		return nil, err
	}

	gardenSvc := garden.NewService(store, clk, garden.NewRandomSource(), catalog, garden.Config{
		Cooldown: cooldown.Config{
			DevMode: cfg.DevMode,
			Cooldowns: map[domain.CareAction]time.Duration{
				domain.ActionWater: cfg.WaterCooldown,
				domain.ActionFeed:  cfg.FeedCooldown,
			},
		},
		StoreTimeout: cfg.StoreTimeout,
	})

	decayCfg := decay.DefaultConfig()
	decayCfg.Concurrency = cfg.DecayConcurrency
	decayCfg.StoreTimeout = cfg.StoreTimeout

	return &Services{
		Garden:  gardenSvc,
		Sweeper: decay.NewSweeper(store, clk, decayCfg),
	}, nil
}

// StartBackground starts the worker pool and schedules the periodic decay sweep
func (s *Services) StartBackground(cfg *config.Config) {
	s.Pool = worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize, cfg.WorkerJobTimeout)
	s.Pool.Start()

	s.Scheduler = scheduler.New(s.Pool)
	s.Scheduler.Schedule(cfg.DecayInterval, decay.NewJob(s.Sweeper, nil), cfg.DecayOnStart)

	slog.Info(LogMsgDecayScheduled, "interval", cfg.DecayInterval, "run_on_start", cfg.DecayOnStart)
}
