package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DiscordConfig holds the Discord bot configuration
type DiscordConfig struct {
	Token              string        `env:"DISCORD_TOKEN"`
	AppID              string        `env:"DISCORD_APP_ID"`
	APIURL             string        `env:"API_URL" envDefault:"http://localhost:8080"`
	APIKey             string        `env:"API_KEY"`
	HealthPort         string        `env:"DISCORD_HEALTH_PORT" envDefault:"8082"`
	ForceCommandUpdate bool          `env:"DISCORD_FORCE_COMMAND_UPDATE" envDefault:"false"`
	CacheSize          int           `env:"DISCORD_CACHE_SIZE" envDefault:"5000"`
	CacheTTL           time.Duration `env:"DISCORD_CACHE_TTL" envDefault:"30m"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`
	Version            string        `env:"VERSION" envDefault:"dev"`
	Environment        string        `env:"ENVIRONMENT" envDefault:"dev"`
}

// LoadDiscord loads the Discord bot configuration from environment variables
func LoadDiscord() (*DiscordConfig, error) {
	_ = godotenv.Load()

	cfg := &DiscordConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if cfg.Token == "" {
		return nil, errors.New(ErrMsgDiscordTokenRequired)
	}
	if cfg.AppID == "" {
		return nil, errors.New(ErrMsgDiscordAppIDRequired)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("%s: DISCORD_CACHE_TTL", ErrMsgNonPositiveDuration)
	}
	return cfg, nil
}
