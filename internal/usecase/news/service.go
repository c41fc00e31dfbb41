package news

import (
	"context"
	"fmt"
	"strings"

	"newsbrief/internal/domain/entity"
	"newsbrief/internal/repository"
)

// Catalog holds the category rules for headline lookups.
type Catalog struct {
	// Country is the region used for category lookups.
	Country string
	// DefaultCategory is used when no category is given.
	DefaultCategory string
	// Sources maps reserved category tokens to a provider source id.
	Sources map[string]string
}

// DefaultCatalog is the built-in catalog: US headlines, "general" by
// default, and "bbc" served from the bbc-news source.
func DefaultCatalog() Catalog {
	return Catalog{
		Country:         "us",
		DefaultCategory: "general",
		Sources:         map[string]string{"bbc": "bbc-news"},
	}
}

// Service provides the headline and search use cases.
type Service struct {
	Repo    repository.NewsRepository
	Catalog Catalog
}

// NewService creates a Service.
func NewService(repo repository.NewsRepository, catalog Catalog) *Service {
	return &Service{Repo: repo, Catalog: catalog}
}

// HeadlineQuery builds the provider query for a category token.
// A reserved token selects its named source and nothing else; any other
// token is looked up as a category within the catalog country.
func (s *Service) HeadlineQuery(category string) entity.HeadlineQuery {
	category = strings.TrimSpace(category)
	if category == "" {
		category = s.Catalog.DefaultCategory
	}
	if source, ok := s.Catalog.Sources[category]; ok {
		return entity.HeadlineQuery{Source: source}
	}
	return entity.HeadlineQuery{
		Country:  s.Catalog.Country,
		Category: category,
	}
}

// Headlines returns the raw provider payload of top headlines for category.
func (s *Service) Headlines(ctx context.Context, category string) ([]byte, error) {
	q := s.HeadlineQuery(category)

	body, err := s.Repo.TopHeadlines(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w: %w", ErrUpstream, err)
	}
	return body, nil
}

// Search returns the raw provider payload of a popularity-sorted English
// search for q. A blank q fails with ErrMissingQuery without calling the
// provider.
func (s *Service) Search(ctx context.Context, q string) ([]byte, error) {
	query := entity.NewSearchQuery(q)
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingQuery, err)
	}

	body, err := s.Repo.Everything(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search news: %w: %w", ErrUpstream, err)
	}
	return body, nil
}
