package discord

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Bot connects the Discord gateway to the garden API
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	Registry *CommandRegistry

	inflight sync.WaitGroup
}

// Config holds the bot configuration
type Config struct {
	Token     string
	AppID     string
	APIURL    string
	APIKey    string
	CacheSize int
	CacheTTL  time.Duration
}

// New builds a bot; no network calls happen until Start
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	// slash commands need no privileged intents
	s.Identify.Intents = discordgo.IntentsGuilds

	client := NewAPIClient(cfg.APIURL, cfg.APIKey)
	client.SetRegisteredCache(cfg.CacheSize, cfg.CacheTTL)

	return &Bot{
		Session:  s,
		Client:   client,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway, then waits up to CommandTimeout for commands
// already being handled
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn(LogMsgGatewayCloseFailed, "error", err)
	}

	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(CommandTimeout):
		slog.Warn(LogMsgDrainTimedOut, "timeout", CommandTimeout)
	}
}

// Run blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	slog.Info(LogMsgBotStopping)
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand || b.Registry == nil {
		return
	}

	b.inflight.Add(1)
	defer b.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			slog.Error(LogMsgHandlerPanic,
				"command", i.ApplicationCommandData().Name,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	b.Registry.Handle(s, i, b.Client)
}
