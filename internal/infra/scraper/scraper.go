// Package scraper fetches article pages and extracts their plain text.
package scraper

import (
	"context"
	"log/slog"
	"time"

	"newsbrief/internal/observability/logging"
	"newsbrief/internal/observability/metrics"
	"newsbrief/internal/observability/tracing"
	"newsbrief/internal/resilience/circuitbreaker"
	"newsbrief/internal/utils/text"

	"go.opentelemetry.io/otel/attribute"
)

// Scraper combines a PageFetcher with one Extractor. The extractor is fixed
// at construction; a strategy that yields no text is not retried with another.
type Scraper struct {
	fetcher   *PageFetcher
	extractor Extractor
}

// New creates a scraper for the given configuration and strategy.
func New(config Config, strategy string) (*Scraper, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	extractor, err := NewExtractor(strategy)
	if err != nil {
		return nil, err
	}
	return &Scraper{fetcher: NewPageFetcher(config), extractor: extractor}, nil
}

// Strategy returns the extractor name.
func (s *Scraper) Strategy() string {
	return s.extractor.Name()
}

// CircuitBreaker exposes the page fetch breaker for health reporting.
func (s *Scraper) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.fetcher.CircuitBreaker()
}

// Scrape downloads rawURL and returns the extracted text, which may be empty.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (string, error) {
	strategy := s.extractor.Name()
	ctx, span := tracing.StartSpan(ctx, "scraper.scrape",
		attribute.String("scrape.strategy", strategy),
	)
	logger := logging.ForRequest(ctx, slog.Default())
	start := time.Now()

	page, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		metrics.RecordScrapeFailed(strategy, time.Since(start))
		tracing.EndSpan(span, err)
		logger.Warn("article fetch failed",
			slog.String("url", rawURL),
			slog.Any("error", err))
		return "", err
	}

	articleText, err := s.extractor.Extract(page)
	if err != nil {
		metrics.RecordScrapeFailed(strategy, time.Since(start))
		tracing.EndSpan(span, err)
		logger.Warn("article extraction failed",
			slog.String("url", rawURL),
			slog.Any("error", err))
		return "", err
	}

	chars := text.CountRunes(articleText)
	span.SetAttributes(
		attribute.Int("scrape.html_bytes", len(page.HTML)),
		attribute.Int("scrape.text_chars", chars),
	)
	if chars == 0 {
		metrics.RecordScrapeEmpty(strategy, time.Since(start))
	} else {
		metrics.RecordScrapeSuccess(strategy, time.Since(start), chars)
	}
	tracing.EndSpan(span, nil)

	logger.Debug("article scraped",
		slog.String("url", rawURL),
		slog.String("final_url", page.URL.String()),
		slog.Int("html_bytes", len(page.HTML)),
		slog.Int("text_chars", chars))

	return articleText, nil
}
