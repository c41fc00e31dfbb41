// Package resilience groups the fault tolerance helpers used around
// upstream calls (news provider, article pages, summarization models).
//
// Only circuit breaking is provided. Upstream calls are never retried: a
// failed call is reported to the caller, and repeated failures open the
// breaker so later calls fail fast until the upstream recovers.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.NewsAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
package resilience
