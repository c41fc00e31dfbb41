package metrics

import (
	"time"
)

func result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// RecordUpstreamCall records one news provider call.
// Operation should be UpstreamHeadlines or UpstreamSearch.
func RecordUpstreamCall(operation string, err error, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(operation, result(err)).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordUpstreamTotalResults records the totalResults value of a provider
// response. Negative values mean the field was absent and are ignored.
func RecordUpstreamTotalResults(operation string, total int64) {
	if total < 0 {
		return
	}
	UpstreamTotalResults.WithLabelValues(operation).Observe(float64(total))
}

// RecordScrapeSuccess records a scrape that produced article text.
//
// Example:
//
//	start := time.Now()
//	text, err := scraper.Scrape(ctx, url)
//	if err == nil {
//	    RecordScrapeSuccess("paragraph", time.Since(start), len([]rune(text)))
//	}
func RecordScrapeSuccess(strategy string, duration time.Duration, chars int) {
	ArticleScrapesTotal.WithLabelValues(strategy, ResultSuccess).Inc()
	ArticleScrapeDuration.Observe(duration.Seconds())
	ArticleTextSize.Observe(float64(chars))
}

// RecordScrapeFailed records a scrape whose page could not be fetched.
func RecordScrapeFailed(strategy string, duration time.Duration) {
	ArticleScrapesTotal.WithLabelValues(strategy, ResultFailure).Inc()
	ArticleScrapeDuration.Observe(duration.Seconds())
}

// RecordScrapeEmpty records a page that was fetched but yielded no text.
func RecordScrapeEmpty(strategy string, duration time.Duration) {
	ArticleScrapesTotal.WithLabelValues(strategy, ResultEmpty).Inc()
	ArticleScrapeDuration.Observe(duration.Seconds())
}

// RecordArticleSummarized records the result of a summarize request.
func RecordArticleSummarized(provider string, success bool) {
	status := ResultSuccess
	if !success {
		status = ResultFailure
	}
	ArticlesSummarizedTotal.WithLabelValues(provider, status).Inc()
}

// RecordSummarizationDuration records the time taken to serve a summarize request.
func RecordSummarizationDuration(duration time.Duration) {
	SummarizationDuration.Observe(duration.Seconds())
}
