package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// SetupLogger tees the default slog logger to stdout and a fresh session
// file under cfg.LogDir. The caller closes the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, logDirMode); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateLogDir, err)
	}
	pruneLogs(cfg.LogDir, MaxLogFiles-1)

	path := filepath.Join(cfg.LogDir, logFileName(time.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(LoggerConfig(cfg), io.MultiWriter(os.Stdout, f))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "file", path)
	slog.Info(LogMsgStarting, "environment", cfg.Environment, "version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"store_backend", cfg.StoreBackend,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"redis_addr", cfg.RedisAddr,
		"port", cfg.Port)

	return f, nil
}

// LoggerConfig maps application config onto logger config
func LoggerConfig(cfg *config.Config) logger.Config {
	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)
}

func logFileName(t time.Time) string {
	return logFilePrefix + t.Format(logFileTimeLayout) + logFileSuffix
}

// pruneLogs deletes the oldest session logs until at most keep remain.
// Files that don't look like session logs are left alone.
func pruneLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var sessions []string
	for _, e := range entries {
		name := e.Name()
		if e.Type().IsRegular() && strings.HasPrefix(name, logFilePrefix) && strings.HasSuffix(name, logFileSuffix) {
			sessions = append(sessions, name)
		}
	}
	if len(sessions) <= keep {
		return
	}

	slices.Sort(sessions)
	for _, name := range sessions[:len(sessions)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			// default logger is not installed yet
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgPruneLogFailed, name, err)
		}
	}
}
