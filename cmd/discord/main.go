// Command discord runs the Discord front end for the garden API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/discord"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

const serviceName = "garden-bot-discord"

func main() {
	if err := run(); err != nil {
		slog.Error("Discord bot exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDiscord()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, serviceName, cfg.Version, cfg.Environment, false))
	slog.Info("Garden API endpoint", "url", cfg.APIURL, "api_key_set", cfg.APIKey != "")

	bot, err := discord.New(discord.Config{
		Token:     cfg.Token,
		AppID:     cfg.AppID,
		APIURL:    cfg.APIURL,
		APIKey:    cfg.APIKey,
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})
	if err != nil {
		return err
	}

	health := discord.NewHTTPServer(cfg.HealthPort, bot)
	health.Start()
	defer health.Stop()

	bot.Registry.RegisterAll(discord.DefaultCommands())
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// commands from an earlier deploy keep working
		slog.Error("Command registration failed", "error", err, "forced", cfg.ForceCommandUpdate)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return bot.Run(ctx)
}
