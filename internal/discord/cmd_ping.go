package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand reports gateway latency and whether the garden API is reachable
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check the bot and garden API are alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			probeCtx, cancel := context.WithTimeout(ctx, HealthProbeTimeout)
			defer cancel()

			started := time.Now()
			healthy := client.Healthz(probeCtx)
			return formatPing(s.HeartbeatLatency(), time.Since(started), healthy), nil
		})
	}

	return cmd, handler
}

func formatPing(gateway, api time.Duration, healthy bool) *discordgo.MessageEmbed {
	embed := createEmbed("🏓 Pong!", "", ColorGreen)
	apiValue := fmt.Sprintf("✅ %dms", api.Milliseconds())
	if !healthy {
		embed.Color = ColorRed
		apiValue = "❌ unreachable"
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Gateway", Value: fmt.Sprintf("%dms", gateway.Milliseconds()), Inline: true},
		{Name: "Garden API", Value: apiValue, Inline: true},
	}
	return embed
}
