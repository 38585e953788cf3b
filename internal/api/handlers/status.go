package handlers

import (
	"net/http"
	"time"

	"github.com/eargollo/plotify/internal/health"
	"github.com/eargollo/plotify/internal/scheduler"
)

// StatusHandler handles GET /api/status.
type StatusHandler struct {
	Probe   *health.Probe
	Sched   *scheduler.Scheduler
	Version string
}

type statusResponse struct {
	Version     string         `json:"version"`
	Store       *health.Result `json:"store"`
	NextCheckAt *time.Time     `json:"next_check_at"`
}

// ServeHTTP returns the last store health check as JSON.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Version: h.Version}
	if h.Probe != nil {
		resp.Store = h.Probe.Last()
	}
	if h.Sched != nil {
		resp.NextCheckAt = h.Sched.NextRunAt()
	}
	writeJSON(w, http.StatusOK, resp)
}
