package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/cooldown"
	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/mocks"
)

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func samplePlant() *domain.PlantRecord {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.PlantRecord{
		UserID:      "u1",
		DisplayName: "Ada",
		GroupID:     "g1",
		Variety:     "Sunflower",
		Height:      1,
		Health:      100,
		LastWatered: now.Add(-domain.WaterCooldown),
		LastFed:     now.Add(-domain.FeedCooldown),
		PlantedAt:   now,
	}
}

func TestHandleStart(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockGardenService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Creates plant",
			body: StartPlantRequest{UserID: "u1", DisplayName: "Ada", GroupID: "g1"},
			setupMock: func(m *mocks.MockGardenService) {
				m.On("GetOrCreate", mock.Anything, "u1", "Ada", "g1").Return(samplePlant(), true, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   MsgPlantCreated,
		},
		{
			name: "Existing plant",
			body: StartPlantRequest{UserID: "u1", GroupID: "g1"},
			setupMock: func(m *mocks.MockGardenService) {
				m.On("GetOrCreate", mock.Anything, "u1", "", "g1").Return(samplePlant(), false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgPlantExisting,
		},
		{
			name:           "Missing group",
			body:           StartPlantRequest{UserID: "u1"},
			setupMock:      func(m *mocks.MockGardenService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"group_id"`,
		},
		{
			name:           "Whitespace in user id",
			body:           StartPlantRequest{UserID: "u 1", GroupID: "g1"},
			setupMock:      func(m *mocks.MockGardenService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Malformed JSON",
			body:           "{not json",
			setupMock:      func(m *mocks.MockGardenService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Store unavailable",
			body: StartPlantRequest{UserID: "u1", GroupID: "g1"},
			setupMock: func(m *mocks.MockGardenService) {
				m.On("GetOrCreate", mock.Anything, "u1", "", "g1").
					Return(nil, false, fmt.Errorf("create: %w", domain.ErrStoreUnavailable))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockGardenService(t)
			tt.setupMock(svc)
			h := NewPlantHandler(svc)

			var body *bytes.Buffer
			if s, ok := tt.body.(string); ok {
				body = bytes.NewBufferString(s)
			} else {
				body = jsonBody(t, tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/start", body)
			w := httptest.NewRecorder()
			h.HandleStart(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleStart_BodyTooLarge(t *testing.T) {
	h := NewPlantHandler(mocks.NewMockGardenService(t))

	body := `{"user_id":"u1","group_id":"g1","display_name":"` + strings.Repeat("x", 512) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/start", strings.NewReader(body))
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 64)
	h.HandleStart(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgBodyTooLarge)
}

// Validation output uses the JSON field names
func TestHandleStart_ValidationFieldNames(t *testing.T) {
	h := NewPlantHandler(mocks.NewMockGardenService(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/start", jsonBody(t, StartPlantRequest{}))
	w := httptest.NewRecorder()
	h.HandleStart(w, req)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "user_id")
	assert.Contains(t, resp.Fields, "group_id")
}

func TestHandleWater(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		svc.On("Care", mock.Anything, "u1", domain.ActionWater).Return(&domain.CareResult{
			Action: domain.ActionWater, Growth: 2, NewHeight: 3, NewHealth: 100,
			Stage: domain.StageInfo{Name: "Seed", Symbol: "🌱"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/water", jsonBody(t, CareRequest{UserID: "u1"}))
		w := httptest.NewRecorder()
		NewPlantHandler(svc).HandleWater(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var result domain.CareResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, 2, result.Growth)
		assert.Equal(t, 3, result.NewHeight)
	})

	t.Run("On cooldown", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		svc.On("Care", mock.Anything, "u1", domain.ActionWater).
			Return(nil, cooldown.ErrOnCooldown{Action: domain.ActionWater, Remaining: 3*time.Hour + 30*time.Minute})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/water", jsonBody(t, CareRequest{UserID: "u1"}))
		w := httptest.NewRecorder()
		NewPlantHandler(svc).HandleWater(w, req)

		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "12600", w.Header().Get("Retry-After"))

		var resp CooldownResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.HoursLeft)
		assert.Equal(t, domain.ActionWater, resp.Action)
	})

	t.Run("No plant", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		svc.On("Care", mock.Anything, "u1", domain.ActionWater).Return(nil, domain.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/water", jsonBody(t, CareRequest{UserID: "u1"}))
		w := httptest.NewRecorder()
		NewPlantHandler(svc).HandleWater(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoPlantError)
	})

	t.Run("Concurrent update", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		svc.On("Care", mock.Anything, "u1", domain.ActionWater).Return(nil, domain.ErrConcurrentUpdate)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/water", jsonBody(t, CareRequest{UserID: "u1"}))
		w := httptest.NewRecorder()
		NewPlantHandler(svc).HandleWater(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleFeed(t *testing.T) {
	svc := mocks.NewMockGardenService(t)
	svc.On("Care", mock.Anything, "u1", domain.ActionFeed).Return(&domain.CareResult{
		Action: domain.ActionFeed, Growth: 5, NewHeight: 6, NewHealth: 100,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plant/feed", jsonBody(t, CareRequest{UserID: "u1"}))
	w := httptest.NewRecorder()
	NewPlantHandler(svc).HandleFeed(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"feed"`)
}

func TestHandleGetPlant(t *testing.T) {
	t.Run("Missing user id", func(t *testing.T) {
		h := NewPlantHandler(mocks.NewMockGardenService(t))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plant", nil)
		w := httptest.NewRecorder()
		h.HandleGetPlant(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "user_id")
	})

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		plant := samplePlant()
		svc.On("GetPlant", mock.Anything, "u1").Return(&domain.PlantStatus{
			Plant:            *plant,
			Stage:            domain.StageInfo{Name: "Seed", Symbol: "🌱"},
			DaysSincePlanted: 3,
			NextWaterAt:      plant.PlantedAt,
			NextFeedAt:       plant.PlantedAt,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plant?user_id=u1", nil)
		w := httptest.NewRecorder()
		NewPlantHandler(svc).HandleGetPlant(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var status domain.PlantStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, 3, status.DaysSincePlanted)
		assert.Equal(t, "Sunflower", status.Plant.Variety)
	})
}

func TestHandleLeaderboard(t *testing.T) {
	t.Run("Default limit", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		svc.On("Leaderboard", mock.Anything, "g1", domain.DefaultLeaderboardLimit).Return([]domain.LeaderboardEntry{
			{Rank: 1, UserID: "a", Height: 9},
			{Rank: 2, UserID: "b", Height: 4},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plant/leaderboard?group_id=g1", nil)
		w := httptest.NewRecorder()
		NewPlantHandler(svc).HandleLeaderboard(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp LeaderboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "g1", resp.GroupID)
		assert.Len(t, resp.Entries, 2)
	})

	t.Run("Explicit limit", func(t *testing.T) {
		svc := mocks.NewMockGardenService(t)
		svc.On("Leaderboard", mock.Anything, "g1", 3).Return([]domain.LeaderboardEntry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plant/leaderboard?group_id=g1&limit=3", nil)
		w := httptest.NewRecorder()
		NewPlantHandler(svc).HandleLeaderboard(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"entries":[]`)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		h := NewPlantHandler(mocks.NewMockGardenService(t))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plant/leaderboard?group_id=g1&limit=ten", nil)
		w := httptest.NewRecorder()
		h.HandleLeaderboard(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
	})

	t.Run("Missing group", func(t *testing.T) {
		h := NewPlantHandler(mocks.NewMockGardenService(t))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plant/leaderboard", nil)
		w := httptest.NewRecorder()
		h.HandleLeaderboard(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleInfo(t *testing.T) {
	svc := mocks.NewMockGardenService(t)
	svc.On("Info").Return(domain.GardenInfo{
		Stages:        []domain.StageInfo{{Name: "Seed", Symbol: "🌱", MinHeight: 0}},
		WaterCooldown: domain.WaterCooldown,
		FeedCooldown:  domain.FeedCooldown,
		Varieties:     []string{"Sunflower"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)
	w := httptest.NewRecorder()
	NewPlantHandler(svc).HandleInfo(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sunflower")
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{nil, http.StatusInternalServerError},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", domain.ErrOnCooldown), http.StatusTooManyRequests},
		{domain.ErrConcurrentUpdate, http.StatusConflict},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status, "error: %v", tt.err)
		assert.NotEmpty(t, msg)
	}
}

func TestPlantHandler_LogMessages(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	svc := mocks.NewMockGardenService(t)
	svc.On("GetOrCreate", mock.Anything, "u1", "", "g1").Return(samplePlant(), true, nil)
	svc.On("Care", mock.Anything, "u1", domain.ActionFeed).Return(nil, domain.ErrConcurrentUpdate)
	h := NewPlantHandler(svc)

	w := httptest.NewRecorder()
	h.HandleStart(w, httptest.NewRequest(http.MethodPost, "/api/v1/plant/start",
		jsonBody(t, StartPlantRequest{UserID: "u1", GroupID: "g1"})))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, buf.String(), "creation is logged by the garden service")

	w = httptest.NewRecorder()
	h.HandleFeed(w, httptest.NewRequest(http.MethodPost, "/api/v1/plant/feed",
		jsonBody(t, CareRequest{UserID: "u1"})))
	require.Equal(t, http.StatusConflict, w.Code)

	out := buf.String()
	assert.Contains(t, out, fmt.Sprintf("msg=%q", LogMsgServiceFailed))
	assert.Contains(t, out, fmt.Sprintf("op=%q", OpFeed))
}
