package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SummaryMetricsRecorder defines the interface for recording summary metrics.
// Implementations must be safe for concurrent use.
type SummaryMetricsRecorder interface {
	// RecordLines records the number of non-blank lines in a summary.
	RecordLines(provider string, lines int)

	// RecordLineTargetMissed increments the counter for summaries outside
	// the 5-6 line target.
	RecordLineTargetMissed(provider string)

	// RecordCompliance records whether the latest summary met the line target.
	RecordCompliance(provider string, withinTarget bool)

	// RecordDuration records the model call duration.
	RecordDuration(provider string, duration time.Duration)
}

// PrometheusSummaryMetrics implements SummaryMetricsRecorder using Prometheus.
type PrometheusSummaryMetrics struct {
	linesHistogram    *prometheus.HistogramVec
	missedCounter     *prometheus.CounterVec
	complianceGauge   *prometheus.GaugeVec
	durationHistogram *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusSummaryMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogramVec creates a new histogram vec or returns the existing one.
func getOrCreateHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		return promauto.NewHistogramVec(opts, labels)
	}
	return h
}

// getOrCreateCounterVec creates a new counter vec or returns the existing one.
func getOrCreateCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		return promauto.NewCounterVec(opts, labels)
	}
	return c
}

// getOrCreateGaugeVec creates a new gauge vec or returns the existing one.
func getOrCreateGaugeVec(opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	g := prometheus.NewGaugeVec(opts, labels)
	if err := prometheus.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.GaugeVec)
		}
		return promauto.NewGaugeVec(opts, labels)
	}
	return g
}

// NewPrometheusSummaryMetrics returns the process-wide recorder.
// Metrics are registered once; repeated calls return the same instance.
func NewPrometheusSummaryMetrics() *PrometheusSummaryMetrics {
	prometheusMetricsOnce.Do(func() {
		labels := []string{"provider"}
		prometheusMetricsInstance = &PrometheusSummaryMetrics{
			linesHistogram: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "article_summary_lines",
				Help:    "Distribution of summary lengths in non-blank lines",
				Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 10, 15},
			}, labels),
			missedCounter: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "article_summary_line_target_missed_total",
				Help: "Total number of summaries outside the 5-6 line target",
			}, labels),
			complianceGauge: getOrCreateGaugeVec(prometheus.GaugeOpts{
				Name: "article_summary_line_compliance",
				Help: "1 if the latest summary met the 5-6 line target, else 0",
			}, labels),
			durationHistogram: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "article_summarization_api_duration_seconds",
				Help:    "Time taken by the model API to generate a summary",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}, labels),
		}
	})
	return prometheusMetricsInstance
}

// RecordLines implements SummaryMetricsRecorder.
func (p *PrometheusSummaryMetrics) RecordLines(provider string, lines int) {
	p.linesHistogram.WithLabelValues(provider).Observe(float64(lines))
}

// RecordLineTargetMissed implements SummaryMetricsRecorder.
func (p *PrometheusSummaryMetrics) RecordLineTargetMissed(provider string) {
	p.missedCounter.WithLabelValues(provider).Inc()
}

// RecordCompliance implements SummaryMetricsRecorder.
func (p *PrometheusSummaryMetrics) RecordCompliance(provider string, withinTarget bool) {
	if withinTarget {
		p.complianceGauge.WithLabelValues(provider).Set(1.0)
	} else {
		p.complianceGauge.WithLabelValues(provider).Set(0.0)
	}
}

// RecordDuration implements SummaryMetricsRecorder.
func (p *PrometheusSummaryMetrics) RecordDuration(provider string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(provider).Observe(duration.Seconds())
}

// recordSummary records line metrics for a completed summary and reports
// whether it met the target.
func recordSummary(rec SummaryMetricsRecorder, provider string, lines int, duration time.Duration) bool {
	within := lines >= MinSummaryLines && lines <= MaxSummaryLines
	rec.RecordLines(provider, lines)
	rec.RecordDuration(provider, duration)
	rec.RecordCompliance(provider, within)
	if !within {
		rec.RecordLineTargetMissed(provider)
	}
	return within
}
