// Package http provides the HTTP middleware and operational endpoints
// (health, readiness, liveness, metrics) of the news service.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Health statuses.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Breaker is a circuit breaker whose state is reported by the health endpoints.
type Breaker interface {
	Name() string
	State() gobreaker.State
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	State   string `json:"state,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthHandler reports the state of every upstream circuit breaker.
// Any open breaker makes the service unhealthy (503); a half-open breaker
// is reported as degraded but still returns 200.
type HealthHandler struct {
	Breakers []Breaker
	Version  string
}

// ServeHTTP godoc
// @Summary      Health check
// @Description  Reports upstream circuit breaker states
// @Tags         ops
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus, len(h.Breakers))
	status := StatusHealthy

	for _, b := range h.Breakers {
		check := breakerCheck(b)
		checks[b.Name()] = check
		switch check.Status {
		case StatusUnhealthy:
			status = StatusUnhealthy
		case StatusDegraded:
			if status == StatusHealthy {
				status = StatusDegraded
			}
		}
	}

	statusCode := http.StatusOK
	if status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("health: failed to encode response", slog.Any("error", err))
	}
}

func breakerCheck(b Breaker) CheckStatus {
	state := b.State()
	check := CheckStatus{State: state.String()}
	switch state {
	case gobreaker.StateOpen:
		check.Status = StatusUnhealthy
		check.Message = "circuit breaker open"
	case gobreaker.StateHalfOpen:
		check.Status = StatusDegraded
		check.Message = "circuit breaker probing"
	default:
		check.Status = StatusHealthy
	}
	return check
}

// ReadyHandler handles readiness probe requests.
// It returns 503 while any upstream circuit breaker is open.
type ReadyHandler struct {
	Breakers []Breaker
}

// ServeHTTP godoc
// @Summary      Readiness probe
// @Tags         ops
// @Produce      plain
// @Success      200  {string}  string  "ready"
// @Failure      503  {string}  string  "not ready"
// @Router       /ready [get]
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, b := range h.Breakers {
		if b.State() == gobreaker.StateOpen {
			http.Error(w, "not ready: "+b.Name()+" circuit breaker open", http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Error("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler handles liveness probe requests.
type LiveHandler struct{}

// ServeHTTP godoc
// @Summary      Liveness probe
// @Tags         ops
// @Produce      plain
// @Success      200  {string}  string  "alive"
// @Router       /live [get]
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Error("alive: failed to write response", slog.Any("error", err))
	}
}
