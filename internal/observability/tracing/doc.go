// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware opens a server span per request; StartSpan opens client spans
// around calls to the news provider, article pages, and the summarization model.
package tracing
