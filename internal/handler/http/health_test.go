package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsbrief/internal/resilience/circuitbreaker"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBreaker struct {
	name  string
	state gobreaker.State
}

func (s stubBreaker) Name() string           { return s.name }
func (s stubBreaker) State() gobreaker.State { return s.state }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		breakers       []Breaker
		expectedStatus int
		expectedHealth string
	}{
		{
			name:           "no breakers",
			breakers:       nil,
			expectedStatus: http.StatusOK,
			expectedHealth: StatusHealthy,
		},
		{
			name: "all closed",
			breakers: []Breaker{
				stubBreaker{name: "news-api", state: gobreaker.StateClosed},
				stubBreaker{name: "gemini-api", state: gobreaker.StateClosed},
			},
			expectedStatus: http.StatusOK,
			expectedHealth: StatusHealthy,
		},
		{
			name: "half open is degraded",
			breakers: []Breaker{
				stubBreaker{name: "news-api", state: gobreaker.StateHalfOpen},
				stubBreaker{name: "gemini-api", state: gobreaker.StateClosed},
			},
			expectedStatus: http.StatusOK,
			expectedHealth: StatusDegraded,
		},
		{
			name: "open is unhealthy",
			breakers: []Breaker{
				stubBreaker{name: "news-api", state: gobreaker.StateHalfOpen},
				stubBreaker{name: "gemini-api", state: gobreaker.StateOpen},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &HealthHandler{Breakers: tt.breakers, Version: "test-version"}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))

			var response HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			assert.Equal(t, tt.expectedHealth, response.Status)
			assert.Equal(t, "test-version", response.Version)
			assert.Len(t, response.Checks, len(tt.breakers))

			_, err := time.Parse(time.RFC3339, response.Timestamp)
			assert.NoError(t, err)
		})
	}
}

func TestHealthHandler_ReportsBreakerState(t *testing.T) {
	handler := &HealthHandler{Breakers: []Breaker{
		stubBreaker{name: "article-scrape", state: gobreaker.StateOpen},
	}}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var response HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	check := response.Checks["article-scrape"]
	assert.Equal(t, StatusUnhealthy, check.Status)
	assert.Equal(t, "open", check.State)
	assert.Equal(t, "circuit breaker open", check.Message)
}

func TestReadyHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		breakers       []Breaker
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "ready with closed breakers",
			breakers:       []Breaker{stubBreaker{name: "news-api", state: gobreaker.StateClosed}},
			expectedStatus: http.StatusOK,
			expectedBody:   "ready",
		},
		{
			name:           "half open is still ready",
			breakers:       []Breaker{stubBreaker{name: "news-api", state: gobreaker.StateHalfOpen}},
			expectedStatus: http.StatusOK,
			expectedBody:   "ready",
		},
		{
			name: "not ready when any breaker is open",
			breakers: []Breaker{
				stubBreaker{name: "news-api", state: gobreaker.StateClosed},
				stubBreaker{name: "claude-api", state: gobreaker.StateOpen},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "not ready: claude-api circuit breaker open\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &ReadyHandler{Breakers: tt.breakers}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestReadyHandler_WithTrippedBreaker(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "news-api",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      1,
	})
	handler := &ReadyHandler{Breakers: []Breaker{cb}}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	_, _ = cb.Execute(func() (interface{}, error) { return nil, errors.New("upstream down") })
	require.True(t, cb.IsOpen())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	handler := &LiveHandler{}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "alive", rec.Body.String())
}
