package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsbrief/internal/domain/entity"
	"newsbrief/internal/observability/logging"
	"newsbrief/internal/observability/metrics"
	"newsbrief/internal/utils/text"
)

// ArticleScraper fetches a page and returns its extracted text.
// An empty string with a nil error means the page had no usable text.
type ArticleScraper interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// Summarizer sends a prompt to a generative model.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// Service runs the two-phase summarize pipeline.
// Scraping always completes before the model is called.
type Service struct {
	Scraper    ArticleScraper
	Summarizer Summarizer
}

// NewService creates a Service.
func NewService(scraper ArticleScraper, summarizer Summarizer) *Service {
	return &Service{Scraper: scraper, Summarizer: summarizer}
}

// Summarize scrapes url and returns a model-generated summary of its text.
//
// Errors:
//   - ErrMissingURL when url is blank
//   - ErrScrapeFailed when the page cannot be fetched
//   - ErrNoArticleText when the page yields no text
//   - ErrSummarizationFailed when the model call fails
//
// The model is never called unless non-empty text was extracted.
func (s *Service) Summarize(ctx context.Context, url string) (*entity.SummaryResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrMissingURL
	}

	start := time.Now()
	logger := logging.ForRequest(ctx, logging.FromContext(ctx))
	provider := s.Summarizer.Provider()

	articleText, err := s.Scraper.Scrape(ctx, url)
	if err != nil {
		metrics.RecordArticleSummarized(provider, false)
		return nil, fmt.Errorf("%w: %w", ErrScrapeFailed, err)
	}
	if strings.TrimSpace(articleText) == "" {
		metrics.RecordArticleSummarized(provider, false)
		return nil, ErrNoArticleText
	}

	logger.Debug("article scraped",
		slog.String("url", url),
		slog.Int("chars", text.CountRunes(articleText)))

	summary, err := s.Summarizer.Summarize(ctx, BuildPrompt(articleText))
	if err != nil {
		metrics.RecordArticleSummarized(provider, false)
		return nil, fmt.Errorf("%w: %w", ErrSummarizationFailed, err)
	}

	duration := time.Since(start)
	metrics.RecordArticleSummarized(provider, true)
	metrics.RecordSummarizationDuration(duration)

	logger.Info("article summarized",
		slog.String("provider", provider),
		slog.Int("summary_lines", text.CountLines(summary)),
		slog.Duration("duration", duration))

	return &entity.SummaryResult{Summary: summary}, nil
}
