// Package apiclient is the HTTP client used by newsctl to talk to the
// news brief API server.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsbrief/internal/domain/entity"
	"newsbrief/internal/handler/http/requestid"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the server address used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

// DefaultTimeout bounds one call. Summaries wait on a page fetch and a
// model call, so it is longer than a typical API timeout.
const DefaultTimeout = 90 * time.Second

// maxResponseSize caps how much of a server response is read.
const maxResponseSize = 16 * 1024 * 1024

// ErrInvalidResponse is returned when a success response cannot be decoded.
var ErrInvalidResponse = errors.New("invalid response from server")

// APIError is a non-2xx response. Message is the server's {"message"} text.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the server message so it can be shown to readers as is.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for call diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Client calls /api/news, /api/search and /api/summarize.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client for baseURL. An empty baseURL uses DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Headlines fetches headlines for category. An empty category lets the
// server apply its default.
func (c *Client) Headlines(ctx context.Context, category string) ([]entity.Article, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	return c.articles(ctx, "/api/news", params)
}

// Search fetches articles matching q.
func (c *Client) Search(ctx context.Context, q string) ([]entity.Article, error) {
	params := url.Values{}
	params.Set("q", q)
	return c.articles(ctx, "/api/search", params)
}

// Summarize asks the server to summarize the article at articleURL.
func (c *Client) Summarize(ctx context.Context, articleURL string) (string, error) {
	payload, err := json.Marshal(entity.SummaryRequest{URL: articleURL})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, "/api/summarize", nil, payload)
	if err != nil {
		return "", err
	}
	var result entity.SummaryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return result.Summary, nil
}

func (c *Client) articles(ctx context.Context, path string, params url.Values) ([]entity.Article, error) {
	body, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}
	var resp entity.ArticlesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return resp.Articles, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, payload []byte) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := requestid.New()
	req.Header.Set(requestid.RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", reqID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    gjson.GetBytes(body, "message").String(),
		}
	}
	return body, nil
}
