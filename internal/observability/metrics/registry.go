// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream operation labels.
const (
	UpstreamHeadlines = "headlines"
	UpstreamSearch    = "search"
)

// Result labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultEmpty   = "empty"
)

// News provider metrics
var (
	// UpstreamRequestsTotal counts news provider calls by operation and result
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_upstream_requests_total",
			Help: "Total number of news provider requests",
		},
		[]string{"operation", "result"},
	)

	// UpstreamRequestDuration measures news provider latency
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_upstream_request_duration_seconds",
			Help:    "News provider request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// UpstreamTotalResults records totalResults reported by the provider
	UpstreamTotalResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_upstream_total_results",
			Help:    "totalResults reported by the news provider",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"operation"},
	)
)

// Article scrape metrics
var (
	// ArticleScrapesTotal counts scrape attempts by strategy and result
	ArticleScrapesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_scrapes_total",
			Help: "Total number of article page scrapes",
		},
		[]string{"strategy", "result"}, // result: success, failure, empty
	)

	// ArticleScrapeDuration measures time to fetch and extract an article
	ArticleScrapeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "article_scrape_duration_seconds",
			Help:    "Time taken to fetch and extract an article page",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)

	// ArticleTextSize measures extracted article text length in characters
	ArticleTextSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "article_text_size_chars",
			Help: "Extracted article text length in characters",
			Buckets: []float64{
				100, 200, 400, 800, 1600, 3200, 6400, 12800,
				25600, 51200, 102400, 204800,
			},
		},
	)
)

// Summarization metrics
var (
	// ArticlesSummarizedTotal counts summarize requests by provider and status
	ArticlesSummarizedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_summarized_total",
			Help: "Total number of articles summarized",
		},
		[]string{"provider", "status"},
	)

	// SummarizationDuration measures end-to-end scrape plus summarize time
	SummarizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarization_duration_seconds",
			Help:    "Time taken to scrape and summarize an article",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)
)
