// Package news implements headline lookup and full-text search over the
// news provider.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrMissingQuery indicates the search text was empty or blank.
	// It is returned before any provider call is made.
	ErrMissingQuery = errors.New("search query is required")

	// ErrUpstream indicates the provider call failed for any reason:
	// network error, non-2xx status, malformed body, or open circuit.
	ErrUpstream = errors.New("news provider request failed")
)
