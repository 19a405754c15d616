package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"garden-bot"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	APIKey      string `env:"API_KEY"` // API key for authentication

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	StoreBackend   string        `env:"STORE_BACKEND" envDefault:"postgres"`
	StoreTimeout   time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START" envDefault:"true"`

	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"gardenbot"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"garden:"`

	WaterCooldown time.Duration `env:"WATER_COOLDOWN" envDefault:"4h"`
	FeedCooldown  time.Duration `env:"FEED_COOLDOWN" envDefault:"6h"`
	DevMode       bool          `env:"DEV_MODE" envDefault:"false"`

	DecayInterval    time.Duration `env:"DECAY_INTERVAL" envDefault:"12h"`
	DecayOnStart     bool          `env:"DECAY_ON_START" envDefault:"false"`
	DecayConcurrency int           `env:"DECAY_CONCURRENCY" envDefault:"8"`

	WorkerCount      int           `env:"WORKER_COUNT" envDefault:"2"`
	WorkerQueueSize  int           `env:"WORKER_QUEUE_SIZE" envDefault:"16"`
	WorkerJobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" envDefault:"10m"`

	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	VarietyCatalogPath string        `env:"VARIETY_CATALOG_PATH"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	// Validate API key is set
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch c.StoreBackend {
	case StoreBackendMemory, StoreBackendPostgres, StoreBackendRedis:
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnknownStoreBackend, c.StoreBackend)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%s: %d", ErrMsgInvalidPort, c.Port)
	}
	if c.DecayInterval <= 0 {
		return fmt.Errorf("%s: DECAY_INTERVAL", ErrMsgNonPositiveDuration)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("%s: STORE_TIMEOUT", ErrMsgNonPositiveDuration)
	}
	if c.WaterCooldown < 0 || c.FeedCooldown < 0 {
		return fmt.Errorf("%s: cooldowns must not be negative", ErrMsgNonPositiveDuration)
	}
	if c.DecayConcurrency < 1 {
		c.DecayConcurrency = 1
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
