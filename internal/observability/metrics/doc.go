// Package metrics provides the Prometheus business metrics of the news proxy.
//
// HTTP transport metrics live with the HTTP middleware; this package covers
// what happens behind the handlers:
//   - upstream news provider calls (headlines, search)
//   - article page scrapes and extracted text size
//   - summarization outcomes and latency
//
// All metrics are registered with the Prometheus default registry and
// exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	body, err := provider.TopHeadlines(ctx, query)
//	metrics.RecordUpstreamCall(metrics.UpstreamHeadlines, err, time.Since(start))
package metrics
