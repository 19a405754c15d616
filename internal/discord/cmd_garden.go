package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// MaxLeaderboardLimit bounds the limit option of /leaderboard
const MaxLeaderboardLimit = 25

// achievementRankWindow is how many leaderboard rows are fetched to find the user's rank
const achievementRankWindow = 100

// StartCommand returns the start command definition and handler
func StartCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "start",
		Description: "Plant a seed and start growing",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			user := getInteractionUser(i)
			groupID := getGroupID(i)
			res, err := client.StartPlant(ctx, user.ID, getDisplayName(i), groupID)
			if err != nil {
				return nil, err
			}
			client.registered.add(user.ID, groupID)
			return formatStart(res), nil
		})
	}

	return cmd, handler
}

// PlantCommand returns the plant status command definition and handler
func PlantCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "plant",
		Description: "Check on your plant",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			user := getInteractionUser(i)
			if err := client.EnsurePlant(ctx, user.ID, getDisplayName(i), getGroupID(i)); err != nil {
				return nil, err
			}
			status, err := client.GetPlant(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			return formatPlant(status, time.Now()), nil
		})
	}

	return cmd, handler
}

// WaterCommand returns the water command definition and handler
func WaterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return careCommand(domain.ActionWater, "Water your plant")
}

// FeedCommand returns the feed command definition and handler
func FeedCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return careCommand(domain.ActionFeed, "Feed your plant")
}

func careCommand(action domain.CareAction, description string) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        string(action),
		Description: description,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			user := getInteractionUser(i)
			if err := client.EnsurePlant(ctx, user.ID, getDisplayName(i), getGroupID(i)); err != nil {
				return nil, err
			}
			result, err := client.Care(ctx, action, user.ID)
			if err != nil {
				return nil, err
			}
			return formatCare(result), nil
		})
	}

	return cmd, handler
}

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLimit := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the tallest plants in this server",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "Number of plants to show (default: 10)",
				Required:    false,
				MinValue:    &minLimit,
				MaxValue:    MaxLeaderboardLimit,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			limit := 0
			for _, opt := range getOptions(i) {
				if opt.Name == "limit" {
					limit = int(opt.IntValue())
				}
			}
			limit = min(limit, MaxLeaderboardLimit)

			entries, err := client.Leaderboard(ctx, getGroupID(i), limit)
			if err != nil {
				return nil, err
			}
			return formatLeaderboard(entries), nil
		})
	}

	return cmd, handler
}

// HelpCommand returns the help command definition and handler
func HelpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "Learn how the garden works",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			info, err := client.Info(ctx)
			if err != nil {
				return nil, err
			}
			return formatHelp(info), nil
		})
	}

	return cmd, handler
}

// AchievementsCommand returns the achievements command definition and handler
func AchievementsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "achievements",
		Description: "See your gardening milestones",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			user := getInteractionUser(i)
			groupID := getGroupID(i)
			if err := client.EnsurePlant(ctx, user.ID, getDisplayName(i), groupID); err != nil {
				return nil, err
			}
			status, err := client.GetPlant(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			info, err := client.Info(ctx)
			if err != nil {
				return nil, err
			}
			entries, err := client.Leaderboard(ctx, groupID, achievementRankWindow)
			if err != nil {
				return nil, err
			}
			return formatAchievements(info.Achievements, status.Plant, rankOf(entries, user.ID)), nil
		})
	}

	return cmd, handler
}
