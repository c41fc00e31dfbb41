// Package newsapi is the outbound client for the NewsAPI.org v2 REST API.
//
// Responses are returned as raw bytes so handlers can pass the provider
// payload through unchanged. The client only inspects the envelope
// (status, code, totalResults) with gjson.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"newsbrief/internal/domain/entity"
	"newsbrief/internal/observability/logging"
	"newsbrief/internal/observability/metrics"
	"newsbrief/internal/observability/tracing"
	"newsbrief/internal/resilience/circuitbreaker"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
)

// Provider endpoints, relative to the base URL.
const (
	EndpointTopHeadlines = "top-headlines"
	EndpointEverything   = "everything"
)

// APIKeyHeader carries the credential. NewsAPI also accepts an apiKey query
// parameter; the header keeps the key out of URLs and access logs.
const APIKeyHeader = "X-Api-Key"

// DefaultMaxResponseSize caps the provider body read into memory.
const DefaultMaxResponseSize = 10 * 1024 * 1024

var (
	// ErrInvalidBody is returned when the provider body is not valid JSON.
	ErrInvalidBody = errors.New("news provider returned a malformed body")
	// ErrResponseTooLarge is returned when the body exceeds the size cap.
	ErrResponseTooLarge = errors.New("news provider response too large")
)

// StatusError describes a provider response that was not a success.
type StatusError struct {
	StatusCode int
	// Code and Message come from the provider's error envelope, when present.
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("news provider error: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("news provider error: status %d", e.StatusCode)
}

// Config configures the client.
type Config struct {
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	MaxResponseSize int64
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCircuitBreaker replaces the default breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

// Client calls the provider's top-headlines and everything endpoints.
// It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a client. The HTTP client and circuit breaker are built
// once and shared by all requests.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.MaxResponseSize <= 0 {
		cfg.MaxResponseSize = DefaultMaxResponseSize
	}
	cbConfig := circuitbreaker.NewsAPIConfig()
	cbConfig.IsSuccessful = countsAsSuccess
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    circuitbreaker.New(cbConfig),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// countsAsSuccess reports whether err leaves the breaker's failure count
// untouched. A 4xx rejects the request parameters (e.g. an unknown category)
// and says nothing about provider health; 401 and 429 are the exception, as
// they fail every request until the key or quota changes.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	switch se.StatusCode {
	case http.StatusUnauthorized, http.StatusTooManyRequests:
		return false
	}
	return se.StatusCode >= 400 && se.StatusCode < 500
}

// CircuitBreaker exposes the breaker for health reporting.
func (c *Client) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// TopHeadlines fetches top-headlines for the query and returns the raw body.
func (c *Client) TopHeadlines(ctx context.Context, q entity.HeadlineQuery) ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return c.call(ctx, metrics.UpstreamHeadlines, EndpointTopHeadlines, q.Values())
}

// Everything runs a full-text search and returns the raw body.
func (c *Client) Everything(ctx context.Context, q entity.SearchQuery) ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return c.call(ctx, metrics.UpstreamSearch, EndpointEverything, q.Values())
}

func (c *Client) call(ctx context.Context, operation, endpoint string, params url.Values) ([]byte, error) {
	ctx, span := tracing.StartSpan(ctx, "newsapi."+endpoint,
		attribute.String("news.endpoint", endpoint),
		attribute.String("news.params", params.Encode()),
	)

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, endpoint, params)
	})
	metrics.RecordUpstreamCall(operation, err, time.Since(start))
	tracing.EndSpan(span, err)

	if err != nil {
		logging.ForRequest(ctx, slog.Default()).Warn("news provider call failed",
			slog.String("endpoint", endpoint),
			slog.String("circuit_state", c.breaker.State().String()),
			slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	body := result.([]byte)
	metrics.RecordUpstreamTotalResults(operation, totalResults(body))
	return body, nil
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.cfg.BaseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(body)) > c.cfg.MaxResponseSize {
		return nil, ErrResponseTooLarge
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, body)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidBody
	}
	// NewsAPI reports some failures in-band with a 200.
	if gjson.GetBytes(body, "status").String() == "error" {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

func statusError(code int, body []byte) *StatusError {
	se := &StatusError{StatusCode: code}
	if gjson.ValidBytes(body) {
		res := gjson.GetManyBytes(body, "code", "message")
		se.Code = res[0].String()
		se.Message = res[1].String()
	}
	return se
}

// totalResults returns the envelope's totalResults, or -1 when absent.
func totalResults(body []byte) int64 {
	v := gjson.GetBytes(body, "totalResults")
	if !v.Exists() {
		return -1
	}
	return v.Int()
}
