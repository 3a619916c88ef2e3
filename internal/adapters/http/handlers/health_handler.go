package handlers

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/platform/health"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

const (
	statusOK       = "ok"
	statusFailing  = "failing"
	statusReady    = "ready"
	statusNotReady = "not_ready"

	// readinessTimeout bounds all storage pings for one readiness probe.
	readinessTimeout = 2 * time.Second
)

type checkResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string        `json:"status"`
	Checks []checkResult `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes. Readiness reflects
// the storage backend: remote stores report a ping and, when wrapped, the
// state of their circuit breaker.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. It returns 200 when every registered
// check passes and 503 otherwise, listing checks sorted by name.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	results := h.registry.CheckAll(ctx)

	resp := readinessResponse{
		Status: statusReady,
		Checks: make([]checkResult, 0, len(results)),
	}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		c := checkResult{Name: name, Status: statusOK}
		if err := results[name]; err != nil {
			c.Status = statusFailing
			c.Error = err.Error()
		}
		resp.Checks = append(resp.Checks, c)
	}

	code := http.StatusOK
	if !health.Healthy(results) {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
