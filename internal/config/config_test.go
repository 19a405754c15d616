package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR", "ENVIRONMENT", "VERSION",
	"SERVICE_NAME", "STORE_BACKEND", "STORE_TIMEOUT", "MIGRATE_ON_START",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_MAX_CONNS",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_PREFIX",
	"WATER_COOLDOWN", "FEED_COOLDOWN", "DEV_MODE",
	"DECAY_INTERVAL", "DECAY_ON_START", "DECAY_CONCURRENCY",
	"SHUTDOWN_TIMEOUT", "VARIETY_CATALOG_PATH",
}

// clearEnvVars unsets every variable Load reads, restoring them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
		assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
		assert.Equal(t, 4*time.Hour, cfg.WaterCooldown)
		assert.Equal(t, 6*time.Hour, cfg.FeedCooldown)
		assert.Equal(t, 12*time.Hour, cfg.DecayInterval)
		assert.False(t, cfg.DecayOnStart)
		assert.False(t, cfg.DevMode)
		assert.True(t, cfg.MigrateOnStart)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, "test-key", cfg.APIKey)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("STORE_BACKEND", "redis")
		t.Setenv("REDIS_ADDR", "cache:6380")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("WATER_COOLDOWN", "30m")
		t.Setenv("FEED_COOLDOWN", "1h30m")
		t.Setenv("DECAY_INTERVAL", "1h")
		t.Setenv("DECAY_ON_START", "true")
		t.Setenv("DEV_MODE", "true")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
		assert.Equal(t, "cache:6380", cfg.RedisAddr)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, 30*time.Minute, cfg.WaterCooldown)
		assert.Equal(t, 90*time.Minute, cfg.FeedCooldown)
		assert.Equal(t, time.Hour, cfg.DecayInterval)
		assert.True(t, cfg.DecayOnStart)
		assert.True(t, cfg.DevMode)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("fails when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	t.Run("fails on invalid port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("PORT", "not-a-number")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgParseEnv)
	})

	t.Run("fails on out of range port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("PORT", "70000")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidPort)
	})

	t.Run("fails on unknown backend", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("STORE_BACKEND", "sqlite")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownStoreBackend)
	})

	t.Run("fails on zero decay interval", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("DECAY_INTERVAL", "0s")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DECAY_INTERVAL")
	})

	t.Run("clamps decay concurrency", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "k")
		t.Setenv("DECAY_CONCURRENCY", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.DecayConcurrency)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "garden",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "plants",
	}
	assert.Equal(t, "postgres://garden:secret@db:5433/plants?sslmode=disable", cfg.GetDBConnString())
}
