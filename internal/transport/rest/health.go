package rest

import (
	"fmt"
	"net/http"
	"time"
)

// budgetStatus is the read side of the call budget.
type budgetStatus interface {
	Used() int
	Ceiling() int
	Remaining() int
	Exhausted() bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	budget   budgetStatus
	provider string
	version  string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(budget budgetStatus, provider, version string) *HealthHandler {
	return &HealthHandler{budget: budget, provider: provider, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 while backend calls remain, 503 once
// the call budget is spent.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.budget.Exhausted() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with version, backend and budget.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"backend": {Status: "ok", Detail: h.provider},
	}
	overallStatus := "ok"

	budget := CompStatus{
		Status: "ok",
		Detail: fmt.Sprintf("%d / %d", h.budget.Used(), h.budget.Ceiling()),
	}
	if h.budget.Exhausted() {
		budget.Status = "down"
		overallStatus = "down"
	}
	components["budget"] = budget

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
