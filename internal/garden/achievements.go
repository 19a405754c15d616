package garden

import (
	"slices"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

var achievementGoals = []domain.AchievementGoal{
	{ID: "first_sprout", Symbol: "🌱", Description: "Plant your first seed"},
	{ID: "caring_gardener", Symbol: "💧", Description: "Water 10 times"},
	{ID: "feeding_master", Symbol: "🌿", Description: "Feed 10 times"},
	{ID: "high_rise", Symbol: "📏", Description: "Grow taller than 25"},
	{ID: "giant", Symbol: "🌳", Description: "Grow taller than 50"},
	{ID: "group_champion", Symbol: "🏆", Description: "Take first place in your group"},
}

// AchievementGoals lists the achievements shown on the achievements screen
func AchievementGoals() []domain.AchievementGoal {
	return slices.Clone(achievementGoals)
}

// AchievementProgress returns the progress counter for an achievement.
// rank is the plant's place on its group leaderboard, 0 when unranked.
// ok is false for unknown ids.
func AchievementProgress(id string, plant domain.PlantRecord, rank int) (current, target int, ok bool) {
	switch id {
	case "first_sprout":
		return 1, 1, true
	case "caring_gardener":
		return min(plant.WaterCount, 10), 10, true
	case "feeding_master":
		return min(plant.FeedCount, 10), 10, true
	case "high_rise":
		return min(plant.Height, 26), 26, true
	case "giant":
		return min(plant.Height, 51), 51, true
	case "group_champion":
		if rank == 1 {
			return 1, 1, true
		}
		return 0, 1, true
	default:
		return 0, 0, false
	}
}
