// Package summarizer sends summarization prompts to hosted generative models.
//
// Providers:
//   - Gemini, through its OpenAI-compatible endpoint (go-openai)
//   - OpenAI (go-openai)
//   - Claude (anthropic-sdk-go)
//
// Every provider call runs under a timeout and a circuit breaker. Calls are
// never retried and prompts are sent unmodified.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"newsbrief/internal/observability/logging"
	"newsbrief/internal/observability/tracing"
	"newsbrief/internal/resilience/circuitbreaker"
	"newsbrief/internal/utils/text"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// ErrCircuitOpen is returned while the provider's breaker is open.
var ErrCircuitOpen = errors.New("summarizer unavailable: circuit breaker open")

// Summarizer generates text for a prompt.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
	Provider() string
	CircuitBreaker() *circuitbreaker.CircuitBreaker
}

// completeFunc performs one provider API call.
type completeFunc func(ctx context.Context, prompt string) (string, error)

// base holds what every provider shares: identity, limits, breaker, metrics.
type base struct {
	provider        string
	config          Config
	circuitBreaker  *circuitbreaker.CircuitBreaker
	metricsRecorder SummaryMetricsRecorder
}

func newBase(cfg Config) base {
	cbConfig := circuitbreaker.SummarizerAPIConfig(cfg.Provider)
	cbConfig.IsSuccessful = countsAsSuccess
	return base{
		provider:        cfg.Provider,
		config:          cfg,
		circuitBreaker:  circuitbreaker.New(cbConfig),
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// countsAsSuccess reports whether err leaves the breaker's failure count
// untouched: the provider rejected this one prompt (e.g. an article larger
// than the context window) with 400, 413 or 422.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var status int
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	var claudeErr *anthropic.Error
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	case errors.As(err, &claudeErr):
		status = claudeErr.StatusCode
	default:
		return false
	}
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnprocessableEntity:
		return true
	}
	return false
}

// Provider returns the provider identifier.
func (b *base) Provider() string { return b.provider }

// Model returns the model identifier.
func (b *base) Model() string { return b.config.Model }

// CircuitBreaker exposes the breaker for health reporting.
func (b *base) CircuitBreaker() *circuitbreaker.CircuitBreaker { return b.circuitBreaker }

// run executes one model call through the timeout and the breaker.
func (b *base) run(ctx context.Context, prompt string, complete completeFunc) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.config.Timeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "summarizer.generate",
		attribute.String("llm.provider", b.provider),
		attribute.String("llm.model", b.config.Model),
		attribute.Int("llm.prompt_chars", text.CountRunes(prompt)),
	)
	logger := logging.ForRequest(ctx, slog.Default()).With(
		slog.String("provider", b.provider),
		slog.String("model", b.config.Model))

	logger.InfoContext(ctx, "Starting summarization",
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()
	result, err := b.circuitBreaker.Execute(func() (interface{}, error) {
		out, err := complete(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(out) == "" {
			return nil, ErrEmptyResponse
		}
		return out, nil
	})
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			logger.WarnContext(ctx, "summarizer circuit breaker open, request rejected",
				slog.String("state", b.circuitBreaker.State().String()))
			err = fmt.Errorf("%s: %w", b.provider, ErrCircuitOpen)
		} else {
			logger.ErrorContext(ctx, "Summarization failed",
				slog.Duration("duration", duration),
				slog.String("error", err.Error()))
			err = fmt.Errorf("%s api error: %w", b.provider, err)
		}
		tracing.EndSpan(span, err)
		return "", err
	}

	summary := result.(string)
	lines := text.CountLines(summary)
	within := recordSummary(b.metricsRecorder, b.provider, lines, duration)

	span.SetAttributes(
		attribute.Int("llm.summary_lines", lines),
		attribute.Bool("llm.within_line_target", within),
	)
	tracing.EndSpan(span, nil)

	logger.InfoContext(ctx, "Summarization completed",
		slog.Int("summary_length", text.CountRunes(summary)),
		slog.Int("summary_lines", lines),
		slog.Bool("within_line_target", within),
		slog.Duration("duration", duration))

	if !within {
		logger.WarnContext(ctx, "Summary outside line target",
			slog.Int("summary_lines", lines),
			slog.Int("min", MinSummaryLines),
			slog.Int("max", MaxSummaryLines))
	}

	return summary, nil
}

// New builds the summarizer selected by cfg.Provider.
func New(cfg Config) (Summarizer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var s Summarizer
	switch cfg.Provider {
	case ProviderGemini:
		s = NewGemini(cfg)
	case ProviderOpenAI:
		s = NewOpenAI(cfg)
	case ProviderClaude:
		s = NewClaude(cfg)
	}

	slog.Info("Initialized summarizer",
		slog.String("provider", cfg.Provider),
		slog.String("model", cfg.Model))
	return s, nil
}
