package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus is served on the bot's internal /health endpoint
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	GatewayLatencyMs int64      `json:"gateway_latency_ms"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
	CachedGardeners  int        `json:"cached_gardeners"`
}

var (
	startTime = time.Now()
	commands  atomic.Int64
	lastSeen  atomic.Int64 // unix nanos of the latest command
)

// RecordCommand counts a dispatched command
func RecordCommand() {
	commands.Add(1)
	lastSeen.Store(time.Now().UnixNano())
}

// HandleHealth answers 200 only when the gateway is up and the garden API
// answers its liveness probe; otherwise 503 with the same body
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	st := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		CommandsReceived: commands.Load(),
	}
	if s := h.bot.Session; s != nil {
		st.Connected = s.DataReady
		st.GatewayLatencyMs = s.HeartbeatLatency().Milliseconds()
	}
	if c := h.bot.Client; c != nil {
		ctx, cancel := context.WithTimeout(r.Context(), HealthProbeTimeout)
		st.APIReachable = c.Healthz(ctx)
		cancel()
		st.CachedGardeners = c.registered.len()
	}
	if ns := lastSeen.Load(); ns != 0 {
		t := time.Unix(0, ns).UTC()
		st.LastCommandTime = &t
	}

	code := http.StatusOK
	if !st.Connected || !st.APIReachable {
		st.Status, code = "degraded", http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(st)
}
