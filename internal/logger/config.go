package logger

import (
	"log/slog"
	"strings"
)

// Config controls handler choice, level and the attributes stamped on every record
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config from explicit values and fills empty fields
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}.withDefaults()
}

// withDefaults picks text+debug+source for dev and json+info elsewhere when
// the caller left level or format blank
func (c Config) withDefaults() Config {
	dev := c.Environment == "" || c.Environment == EnvDevelopment
	if c.Level == "" {
		c.Level = LevelInfo
		if dev {
			c.Level = LevelDebug
		}
	}
	if c.Format == "" {
		c.Format = FormatJSON
		if dev {
			c.Format = FormatText
		}
	}
	if c.ServiceName == "" {
		c.ServiceName = FallbackServiceName
	}
	if c.Version == "" {
		c.Version = FallbackVersion
	}
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	return c
}

// LogLevel converts the configured level; unknown values mean info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn, LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}

// BaseAttributes are attached to the root handler
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrService, c.ServiceName),
		slog.String(AttrVersion, c.Version),
		slog.String(AttrEnvironment, c.Environment),
	}
}
