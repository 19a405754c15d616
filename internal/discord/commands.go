package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/osse101/GardenBot_Go/internal/metrics"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// DefaultCommands lists every command the bot serves
func DefaultCommands() []CommandFactory {
	return []CommandFactory{
		PingCommand,
		StartCommand,
		PlantCommand,
		WaterCommand,
		FeedCommand,
		LeaderboardCommand,
		HelpCommand,
		AchievementsCommand,
	}
}

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterAll adds every command built by the factories
func (r *CommandRegistry) RegisterAll(factories []CommandFactory) {
	for _, factory := range factories {
		r.Register(factory())
	}
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	name := i.ApplicationCommandData().Name
	if h, ok := r.Handlers[name]; ok {
		RecordCommand()
		metrics.BotCommandsTotal.WithLabelValues(name).Inc()
		h(s, i, client)
	}
}

// RegisterCommands syncs the registry with Discord's global commands.
// The bulk overwrite is skipped when nothing changed, since Discord rate
// limits command creation per day.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	existing, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("fetch registered commands: %w", err)
	}

	desired := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desired = append(desired, cmd)
	}

	if !forceUpdate {
		diff := commandsDiff(existing, desired)
		if diff == "" {
			slog.Info(LogMsgCommandsUnchanged, "count", len(existing))
			return nil
		}
		slog.Debug(LogMsgCommandsDiff, "diff", diff)
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("overwrite commands: %w", err)
	}
	slog.Info(LogMsgCommandsUpdated, "count", len(desired), "forced", forceUpdate)
	return nil
}

// commandSig is the part of a command Discord lets us change
type commandSig struct {
	Name        string
	Description string
	Permissions *int64
	Options     []optionSig
}

type optionSig struct {
	Type        discordgo.ApplicationCommandOptionType
	Name        string
	Description string
	Required    bool
	MinValue    *float64
	MaxValue    float64
	Choices     []string
}

func signatures(cmds []*discordgo.ApplicationCommand) []commandSig {
	sigs := make([]commandSig, 0, len(cmds))
	for _, c := range cmds {
		sig := commandSig{Name: c.Name, Description: c.Description, Permissions: c.DefaultMemberPermissions}
		for _, o := range c.Options {
			opt := optionSig{
				Type:        o.Type,
				Name:        o.Name,
				Description: o.Description,
				Required:    o.Required,
				MinValue:    o.MinValue,
				MaxValue:    o.MaxValue,
			}
			for _, ch := range o.Choices {
				// integer choices come back from Discord as float64
				opt.Choices = append(opt.Choices, fmt.Sprintf("%s=%v", ch.Name, ch.Value))
			}
			sig.Options = append(sig.Options, opt)
		}
		sigs = append(sigs, sig)
	}
	return sigs
}

// commandsDiff returns a readable diff, or "" when both sets match.
// Commands compare by name regardless of order; options keep their order.
func commandsDiff(existing, desired []*discordgo.ApplicationCommand) string {
	byName := cmpopts.SortSlices(func(a, b commandSig) bool { return a.Name < b.Name })
	return cmp.Diff(signatures(existing), signatures(desired), byName, cmpopts.EquateEmpty())
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// handleEmbedResponse defers the response, runs the action with a bounded
// context and sends the resulting embed or a friendly error.
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func(ctx context.Context) (*discordgo.MessageEmbed, error),
) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), CommandTimeout)
	defer cancel()

	embed, err := action(ctx)
	if err != nil {
		slog.Error("Command failed", "command", i.ApplicationCommandData().Name, "error", err)
		respondFriendlyError(s, i, err)
		return
	}

	sendEmbed(s, i, embed)
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from a guild or DM interaction
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// getDisplayName prefers the guild nickname, then the global name
func getDisplayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	user := getInteractionUser(i)
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// getGroupID scopes leaderboards to the guild. Direct messages get a
// per-channel group.
func getGroupID(i *discordgo.InteractionCreate) string {
	if i.GuildID != "" {
		return i.GuildID
	}
	return DirectMessageGroupID + i.ChannelID
}

func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// respondFriendlyError maps API errors to readable messages before responding
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps a client error to the message shown to the player
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgUnavailable
	}

	switch {
	case apiErr.NotFound():
		return MsgNoPlant
	case apiErr.IsCooldown():
		if apiErr.HoursLeft > 0 {
			return fmt.Sprintf("%s\nTry again in **%s**.", MsgCooldownActive, pluralHours(apiErr.HoursLeft))
		}
		return MsgCooldownActive
	case apiErr.Status == http.StatusConflict:
		return MsgConcurrent
	case apiErr.Status == http.StatusBadRequest:
		return MsgInvalidInput
	case apiErr.Status == http.StatusServiceUnavailable:
		return MsgUnavailable
	case apiErr.Message != "":
		return "❌ " + apiErr.Message
	default:
		return MsgGenericError
	}
}

func pluralHours(n int) string {
	if n == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", n)
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed builds an embed with the standard footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterText,
		},
	}
}
