package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/garden"
)

var careSymbols = map[domain.CareAction]string{
	domain.ActionWater: "💧",
	domain.ActionFeed:  "🌿",
}

// title capitalizes each word. A Caser is not safe for concurrent use.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// healthBar renders health as a fixed width bar
func healthBar(health int) string {
	filled := health * HealthBarSegments / domain.MaxHealth
	filled = max(0, min(filled, HealthBarSegments))
	return strings.Repeat(HealthBarFull, filled) + strings.Repeat(HealthBarEmpty, HealthBarSegments-filled)
}

// formatWait renders the time until next, rounded up to the minute
func formatWait(next, now time.Time) string {
	d := next.Sub(now)
	if d <= 0 {
		return "✅ Ready"
	}
	if d%time.Minute != 0 {
		d = d.Truncate(time.Minute) + time.Minute
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	switch {
	case h == 0:
		return fmt.Sprintf("⏳ %dm", m)
	case m == 0:
		return fmt.Sprintf("⏳ %dh", h)
	default:
		return fmt.Sprintf("⏳ %dh %dm", h, m)
	}
}

func formatCooldown(d time.Duration) string {
	if d%time.Hour == 0 {
		return pluralHours(int(d / time.Hour))
	}
	return d.String()
}

func formatPlant(status *domain.PlantStatus, now time.Time) *discordgo.MessageEmbed {
	p := status.Plant
	embed := createEmbed(
		fmt.Sprintf("%s %s's %s", status.Stage.Symbol, p.DisplayName, title(p.Variety)),
		fmt.Sprintf("**%s** · day %d", title(status.Stage.Name), status.DaysSincePlanted),
		ColorGreen,
	)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "📏 Height", Value: fmt.Sprintf("%d", p.Height), Inline: true},
		{Name: "❤️ Health", Value: fmt.Sprintf("%s %d", healthBar(p.Health), p.Health), Inline: true},
		{Name: "🌱 Total Growth", Value: fmt.Sprintf("%d", p.TotalGrowth), Inline: true},
		{Name: "💧 Water", Value: formatWait(status.NextWaterAt, now), Inline: true},
		{Name: "🌿 Feed", Value: formatWait(status.NextFeedAt, now), Inline: true},
		{Name: "🧮 Care", Value: fmt.Sprintf("%d waters · %d feeds", p.WaterCount, p.FeedCount), Inline: true},
	}
	return embed
}

func formatStart(res *StartPlantResult) *discordgo.MessageEmbed {
	titleText := "🌱 Seed Planted!"
	desc := fmt.Sprintf("You planted a **%s**. Water it with `/water` and feed it with `/feed`.", title(res.Plant.Variety))
	if !res.Created {
		titleText = "🪴 Welcome Back"
		desc = fmt.Sprintf("You already have a **%s** %s at height %d.", title(res.Plant.Variety), res.Stage.Symbol, res.Plant.Height)
	}
	return createEmbed(titleText, desc, ColorGreen)
}

func formatCare(result *domain.CareResult) *discordgo.MessageEmbed {
	verb := "Watered"
	if result.Action == domain.ActionFeed {
		verb = "Fed"
	}
	desc := fmt.Sprintf("+%d growth! Your plant is now **%d** tall.\n❤️ %s %d\n%s %s",
		result.Growth, result.NewHeight, healthBar(result.NewHealth), result.NewHealth,
		result.Stage.Symbol, title(result.Stage.Name))

	embed := createEmbed(fmt.Sprintf("%s %s!", careSymbols[result.Action], verb), desc, ColorBlue)
	embed.Footer.Text = fmt.Sprintf("%s · %s", FooterText, title(string(result.Action)))
	return embed
}

func formatLeaderboard(entries []domain.LeaderboardEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return createEmbed("🏆 Garden Leaderboard", "Nobody has planted anything here yet. Use `/start`!", ColorGold)
	}

	var sb strings.Builder
	for _, e := range entries {
		place := fmt.Sprintf("`#%d`", e.Rank)
		if e.Rank >= 1 && e.Rank <= len(Medals) {
			place = Medals[e.Rank-1]
		}
		fmt.Fprintf(&sb, "%s **%s** · %s %s · 📏 %d\n", place, e.DisplayName, e.Stage.Symbol, title(e.Variety), e.Height)
	}
	return createEmbed("🏆 Garden Leaderboard", sb.String(), ColorGold)
}

func formatHelp(info *domain.GardenInfo) *discordgo.MessageEmbed {
	var stages strings.Builder
	for _, st := range info.Stages {
		fmt.Fprintf(&stages, "%s **%s** from height %d\n", st.Symbol, title(st.Name), st.MinHeight)
	}

	embed := createEmbed("🌻 How to Garden",
		"Every gardener tends one plant. Care for it to make it grow and climb the leaderboard. Neglected plants lose health.",
		ColorTeal)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Commands", Value: "`/start` `/plant` `/water` `/feed` `/leaderboard` `/achievements`"},
		{Name: "Cooldowns", Value: fmt.Sprintf("💧 Water every %s\n🌿 Feed every %s",
			formatCooldown(info.WaterCooldown), formatCooldown(info.FeedCooldown))},
		{Name: "Stages", Value: stages.String()},
	}
	if len(info.Varieties) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Varieties",
			Value: strings.Join(info.Varieties, ", "),
		})
	}
	return embed
}

func formatAchievements(goals []domain.AchievementGoal, plant domain.PlantRecord, rank int) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, g := range goals {
		current, target, ok := garden.AchievementProgress(g.ID, plant, rank)
		if !ok {
			continue
		}
		mark := ""
		if current >= target {
			mark = " ✅"
		}
		fmt.Fprintf(&sb, "%s %s · %d/%d%s\n", g.Symbol, g.Description, current, target, mark)
	}
	return createEmbed("🏅 Achievements", sb.String(), ColorPurple)
}

// rankOf finds the user's place in the ranked entries, 0 when absent
func rankOf(entries []domain.LeaderboardEntry, userID string) int {
	for _, e := range entries {
		if e.UserID == userID {
			return e.Rank
		}
	}
	return 0
}
