package discord

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

func handleStart(tc *TestContext, starts *atomic.Int32) {
	tc.Mux.HandleFunc("POST /api/v1/plant/start", func(w http.ResponseWriter, r *http.Request) {
		starts.Add(1)
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		WriteJSON(w, http.StatusCreated, StartPlantResult{
			Created: true,
			Plant:   domain.PlantRecord{UserID: req["user_id"], DisplayName: req["display_name"], GroupID: req["group_id"], Variety: "sunflower"},
			Stage:   domain.StageInfo{Name: "seed", Symbol: "🌰"},
		})
	})
}

func TestStartCommand(t *testing.T) {
	tc := SetupTestContext(t)
	var starts atomic.Int32
	var gotGroup string
	tc.Mux.HandleFunc("POST /api/v1/plant/start", func(w http.ResponseWriter, r *http.Request) {
		starts.Add(1)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotGroup = req["group_id"]
		assert.Equal(t, "Ada", req["display_name"])
		WriteJSON(w, http.StatusCreated, StartPlantResult{Created: true, Plant: domain.PlantRecord{Variety: "sunflower"}})
	})

	_, handler := StartCommand()
	handler(tc.Session, newGuildInteraction("start"), tc.APIClient)

	assert.Equal(t, int32(1), starts.Load())
	assert.Equal(t, "guild-1", gotGroup)
	assert.Contains(t, tc.LastEdit(), "Seed Planted!")
	assert.Contains(t, tc.LastEdit(), "Sunflower")
	assert.True(t, tc.APIClient.registered.has("user-1", "guild-1"))
}

func TestWaterCommand_Success(t *testing.T) {
	tc := SetupTestContext(t)
	var starts atomic.Int32
	handleStart(tc, &starts)
	tc.Mux.HandleFunc("POST /api/v1/plant/water", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.CareResult{
			Action: domain.ActionWater, Growth: 3, NewHeight: 4, NewHealth: 100,
			Stage: domain.StageInfo{Name: "seed", Symbol: "🌰"},
		})
	})

	_, handler := WaterCommand()
	handler(tc.Session, newGuildInteraction("water"), tc.APIClient)
	handler(tc.Session, newGuildInteraction("water"), tc.APIClient)

	// Registration is cached after the first command
	assert.Equal(t, int32(1), starts.Load())

	calls := tc.Calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Contains(t, tc.LastEdit(), "Watered!")
	assert.Contains(t, tc.LastEdit(), "+3 growth")
}

func TestFeedCommand_Cooldown(t *testing.T) {
	tc := SetupTestContext(t)
	var starts atomic.Int32
	handleStart(tc, &starts)
	var feeds atomic.Int32
	tc.Mux.HandleFunc("POST /api/v1/plant/feed", func(w http.ResponseWriter, r *http.Request) {
		feeds.Add(1)
		WriteJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"error": "Action is on cooldown", "action": "feed", "hours_left": 2,
		})
	})

	_, handler := FeedCommand()
	handler(tc.Session, newGuildInteraction("feed"), tc.APIClient)

	assert.Equal(t, int32(1), feeds.Load())

	var edit discordgo.WebhookEdit
	require.NoError(t, json.Unmarshal([]byte(tc.LastEdit()), &edit))
	require.NotNil(t, edit.Content)
	assert.Contains(t, *edit.Content, MsgCooldownActive)
	assert.Contains(t, *edit.Content, "2 hours")
}

func TestPlantCommand(t *testing.T) {
	tc := SetupTestContext(t)
	var starts atomic.Int32
	handleStart(tc, &starts)
	tc.Mux.HandleFunc("GET /api/v1/plant", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
		WriteJSON(w, http.StatusOK, domain.PlantStatus{
			Plant: domain.PlantRecord{DisplayName: "Ada", Variety: "fern", Height: 7, Health: 80},
			Stage: domain.StageInfo{Name: "sprout", Symbol: "🌱"},
		})
	})

	_, handler := PlantCommand()
	handler(tc.Session, newGuildInteraction("plant"), tc.APIClient)

	assert.Contains(t, tc.LastEdit(), "Ada's Fern")
}

func TestLeaderboardCommand(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/plant/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "guild-1", r.URL.Query().Get("group_id"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"entries": []domain.LeaderboardEntry{
				{Rank: 1, UserID: "a", DisplayName: "Ada", Variety: "fern", Height: 20},
				{Rank: 2, UserID: "b", DisplayName: "Bob", Variety: "rose", Height: 10},
			},
		})
	})

	_, handler := LeaderboardCommand()
	handler(tc.Session, newGuildInteraction("leaderboard", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "limit",
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(3),
	}), tc.APIClient)

	edit := tc.LastEdit()
	assert.Contains(t, edit, "🥇 **Ada**")
	assert.Contains(t, edit, "🥈 **Bob**")
}

func TestHelpCommand_APIDown(t *testing.T) {
	tc := SetupTestContext(t)
	tc.APIClient.MaxRetries = 0
	tc.Mux.HandleFunc("GET /api/v1/info", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "down"})
	})

	_, handler := HelpCommand()
	handler(tc.Session, newGuildInteraction("help"), tc.APIClient)

	var edit discordgo.WebhookEdit
	require.NoError(t, json.Unmarshal([]byte(tc.LastEdit()), &edit))
	require.NotNil(t, edit.Content)
	assert.Equal(t, MsgUnavailable, *edit.Content)
}

func TestAchievementsCommand(t *testing.T) {
	tc := SetupTestContext(t)
	var starts atomic.Int32
	handleStart(tc, &starts)
	tc.Mux.HandleFunc("GET /api/v1/plant", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.PlantStatus{Plant: domain.PlantRecord{WaterCount: 10}})
	})
	tc.Mux.HandleFunc("GET /api/v1/info", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.GardenInfo{Achievements: []domain.AchievementGoal{
			{ID: "caring_gardener", Symbol: "💧", Description: "Water 10 times"},
			{ID: "group_champion", Symbol: "🏆", Description: "Take first place in your group"},
		}})
	})
	tc.Mux.HandleFunc("GET /api/v1/plant/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"entries": []domain.LeaderboardEntry{{Rank: 1, UserID: "user-1"}},
		})
	})

	_, handler := AchievementsCommand()
	handler(tc.Session, newGuildInteraction("achievements"), tc.APIClient)

	edit := tc.LastEdit()
	assert.Contains(t, edit, "Water 10 times · 10/10 ✅")
	assert.Contains(t, edit, "Take first place in your group · 1/1 ✅")
}
