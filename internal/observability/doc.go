// Package observability groups the logging, metrics, and tracing helpers
// used by the news proxy.
//
// Subpackages:
//   - logging: slog construction and request-scoped logger helpers
//   - metrics: Prometheus business metrics for upstream calls
//   - tracing: OpenTelemetry HTTP middleware and span helpers
package observability
