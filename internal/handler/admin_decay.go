package handler

import (
	"net/http"
	"time"

	"github.com/osse101/GardenBot_Go/internal/decay"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// DecayReportResponse is the JSON view of a sweep report
type DecayReportResponse struct {
	Message    string    `json:"message"`
	Scanned    int       `json:"scanned"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	Errors     []string  `json:"errors"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
}

// HandleRunDecay runs a decay sweep immediately and returns its report
// @Summary Run decay sweep
// @Description Applies neglect decay to every plant now instead of waiting for the schedule
// @Tags admin
// @Produce json
// @Success 200 {object} DecayReportResponse
// @Security ApiKeyAuth
// @Router /admin/decay/run [post]
func HandleRunDecay(sweeper decay.Sweeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := sweeper.RunSweep(r.Context())

		logger.FromContext(r.Context()).Info(LogMsgManualSweepDone,
			"updated", report.Updated, "skipped", report.Skipped, "errors", len(report.Errors))

		respondJSON(w, http.StatusOK, DecayReportResponse{
			Message:    MsgDecayComplete,
			Scanned:    report.Scanned,
			Updated:    report.Updated,
			Skipped:    report.Skipped,
			Errors:     report.ErrorMessages(),
			StartedAt:  report.StartedAt,
			DurationMs: report.Duration.Milliseconds(),
		})
	}
}
