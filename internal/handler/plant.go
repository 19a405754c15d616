package handler

import (
	"net/http"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// PlantHandler handles plant HTTP endpoints
type PlantHandler struct {
	service garden.Service
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(service garden.Service) *PlantHandler {
	return &PlantHandler{service: service}
}

// StartPlantRequest is the request body for planting a seed
type StartPlantRequest struct {
	UserID      string `json:"user_id" validate:"required,identifier,max=64"`
	DisplayName string `json:"display_name" validate:"max=100,displayname"`
	GroupID     string `json:"group_id" validate:"required,identifier,max=64"`
}

// StartPlantResponse is returned by the start endpoint
type StartPlantResponse struct {
	Message string             `json:"message"`
	Created bool               `json:"created"`
	Plant   domain.PlantRecord `json:"plant"`
	Stage   domain.StageInfo   `json:"stage"`
}

// CareRequest is the request body for water and feed
type CareRequest struct {
	UserID string `json:"user_id" validate:"required,identifier,max=64"`
}

// LeaderboardResponse wraps the ranked entries of a group
type LeaderboardResponse struct {
	GroupID string                    `json:"group_id"`
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// HandleStart plants a seed for the user or returns the existing plant
// @Summary Start a plant
// @Description Plants a seed on first contact; repeated calls return the existing plant
// @Tags plant
// @Accept json
// @Produce json
// @Param request body StartPlantRequest true "User and group"
// @Success 200 {object} StartPlantResponse
// @Success 201 {object} StartPlantResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /plant/start [post]
func (h *PlantHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartPlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpStartPlant); err != nil {
		return
	}

	plant, created, err := h.service.GetOrCreate(r.Context(), req.UserID, req.DisplayName, req.GroupID)
	if err != nil {
		respondServiceError(w, r, OpStartPlant, err)
		return
	}

	status, msg := http.StatusOK, MsgPlantExisting
	if created {
		status, msg = http.StatusCreated, MsgPlantCreated
	}

	respondJSON(w, status, StartPlantResponse{
		Message: msg,
		Created: created,
		Plant:   *plant,
		Stage:   garden.Stage(plant.Height),
	})
}

// HandleGetPlant returns the plant status for a user
// @Summary Get plant status
// @Description Returns the plant with stage, age and next care times
// @Tags plant
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.PlantStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plant [get]
func (h *PlantHandler) HandleGetPlant(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	status, err := h.service.GetPlant(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, OpGetPlant, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// HandleWater waters the user's plant
// @Summary Water plant
// @Description Grows the plant by 1-3 and restores 10 health; 4h cooldown
// @Tags plant
// @Accept json
// @Produce json
// @Param request body CareRequest true "User"
// @Success 200 {object} domain.CareResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} CooldownResponse
// @Router /plant/water [post]
func (h *PlantHandler) HandleWater(w http.ResponseWriter, r *http.Request) {
	h.handleCare(w, r, domain.ActionWater, OpWater)
}

// HandleFeed feeds the user's plant
// @Summary Feed plant
// @Description Grows the plant by 2-5 and restores 20 health; 6h cooldown
// @Tags plant
// @Accept json
// @Produce json
// @Param request body CareRequest true "User"
// @Success 200 {object} domain.CareResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} CooldownResponse
// @Router /plant/feed [post]
func (h *PlantHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	h.handleCare(w, r, domain.ActionFeed, OpFeed)
}

func (h *PlantHandler) handleCare(w http.ResponseWriter, r *http.Request, action domain.CareAction, opName string) {
	var req CareRequest
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	result, err := h.service.Care(r.Context(), req.UserID, action)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgCareApplied,
		"op", opName, "user_id", req.UserID, "growth", result.Growth, "height", result.NewHeight)
	respondJSON(w, http.StatusOK, result)
}

// HandleLeaderboard returns the group's tallest plants
// @Summary Group leaderboard
// @Description Plants in the group ranked by height, ties broken by user ID
// @Tags plant
// @Produce json
// @Param group_id query string true "Group ID"
// @Param limit query int false "Max entries (default 10, max 100)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /plant/leaderboard [get]
func (h *PlantHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	groupID, ok := GetQueryParam(r, w, "group_id")
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit", domain.DefaultLeaderboardLimit)
	if !ok {
		return
	}

	entries, err := h.service.Leaderboard(r.Context(), groupID, limit)
	if err != nil {
		respondServiceError(w, r, OpLeaderboard, err)
		return
	}

	respondJSON(w, http.StatusOK, LeaderboardResponse{GroupID: groupID, Entries: entries})
}

// HandleInfo returns the game rules
// @Summary Game rules
// @Description Stages, cooldowns, varieties and achievements for help screens
// @Tags plant
// @Produce json
// @Success 200 {object} domain.GardenInfo
// @Router /info [get]
func (h *PlantHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Info())
}
