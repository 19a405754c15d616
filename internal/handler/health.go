package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

// readyTimeout bounds the readiness probe
const readyTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	StoreRTT  string `json:"store_rtt,omitempty"`
	CheckedAt string `json:"checked_at,omitempty"`
}

// Pinger is implemented by the plant store backends
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz provides a readiness check that validates store connectivity
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (plant store reachable)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		start := time.Now()
		err := store.Ping(ctx)
		resp := HealthResponse{
			Status:    "ok",
			StoreRTT:  time.Since(start).Round(time.Microsecond).String(),
			CheckedAt: start.UTC().Format(time.RFC3339),
		}
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err, "rtt", resp.StoreRTT)
			resp.Status = "unavailable"
			resp.Message = ErrMsgStoreUnreachable
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
