package scraper

import (
	"errors"
	"fmt"
)

// Sentinel errors for article page fetching.
var (
	// ErrInvalidURL indicates the URL is malformed or uses a disallowed scheme.
	ErrInvalidURL = errors.New("invalid article URL")

	// ErrPrivateIP indicates the URL resolves to a private, loopback, or link-local address.
	ErrPrivateIP = errors.New("article URL resolves to a private IP address")

	// ErrTooManyRedirects indicates the redirect limit was exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the page exceeded the configured size limit.
	ErrBodyTooLarge = errors.New("article page too large")

	// ErrTimeout indicates the page did not load within the configured timeout.
	ErrTimeout = errors.New("article fetch timed out")

	// ErrExtractionFailed indicates the HTML could not be parsed.
	ErrExtractionFailed = errors.New("article extraction failed")
)

// HTTPStatusError is returned when the article host answers with a non-2xx status.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("article host returned HTTP %d", e.StatusCode)
}
