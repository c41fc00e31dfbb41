// Package summarize implements the scrape-then-summarize pipeline for a
// single article URL.
package summarize

import "errors"

// Sentinel errors for the summarize use case. Each maps to one client-facing
// message at the HTTP boundary.
var (
	// ErrMissingURL indicates the request carried no article URL.
	ErrMissingURL = errors.New("article URL is required")

	// ErrScrapeFailed indicates the article page could not be fetched.
	ErrScrapeFailed = errors.New("failed to fetch article")

	// ErrNoArticleText indicates the page was fetched but no paragraph text
	// could be extracted.
	ErrNoArticleText = errors.New("no article text extracted")

	// ErrSummarizationFailed indicates the model call failed or returned nothing.
	ErrSummarizationFailed = errors.New("failed to generate summary")
)
