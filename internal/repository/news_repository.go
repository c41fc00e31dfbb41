// Package repository declares the ports the use cases depend on.
package repository

import (
	"context"

	"newsbrief/internal/domain/entity"
)

// NewsRepository reads article collections from the news provider.
// Both methods return the provider body unchanged so it can be passed
// through to clients.
type NewsRepository interface {
	// TopHeadlines returns curated top articles for a source or a
	// country/category pair.
	TopHeadlines(ctx context.Context, q entity.HeadlineQuery) ([]byte, error)
	// Everything runs a full-text search across all indexed sources.
	Everything(ctx context.Context, q entity.SearchQuery) ([]byte, error)
}
