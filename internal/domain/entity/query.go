package entity

import (
	"net/url"
	"strings"
)

// Fixed parameters for the provider's full-text search endpoint.
const (
	SearchSortBy   = "popularity"
	SearchLanguage = "en"
)

// HeadlineQuery selects top headlines either by a named source or by
// category within a region. Source and Country/Category are mutually exclusive.
type HeadlineQuery struct {
	Source   string
	Country  string
	Category string
}

// BySource reports whether the query filters by a named source.
func (q HeadlineQuery) BySource() bool {
	return q.Source != ""
}

// Validate checks that exactly one filter mode is populated.
func (q HeadlineQuery) Validate() error {
	if q.BySource() {
		if q.Country != "" || q.Category != "" {
			return &ValidationError{Field: "source", Message: "cannot be combined with country or category"}
		}
		return nil
	}
	if q.Country == "" {
		return &ValidationError{Field: "country", Message: "is required"}
	}
	if q.Category == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	return nil
}

// Values encodes the query as provider URL parameters.
func (q HeadlineQuery) Values() url.Values {
	v := url.Values{}
	if q.BySource() {
		v.Set("sources", q.Source)
		return v
	}
	v.Set("country", q.Country)
	v.Set("category", q.Category)
	return v
}

// SearchQuery is a full-text search against the provider's index.
type SearchQuery struct {
	Q        string
	SortBy   string
	Language string
}

// NewSearchQuery builds a search sorted by popularity and restricted to English.
func NewSearchQuery(q string) SearchQuery {
	return SearchQuery{
		Q:        strings.TrimSpace(q),
		SortBy:   SearchSortBy,
		Language: SearchLanguage,
	}
}

// Validate checks that the free-text query is present.
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Q) == "" {
		return &ValidationError{Field: "q", Message: "is required"}
	}
	return nil
}

// Values encodes the query as provider URL parameters.
func (q SearchQuery) Values() url.Values {
	v := url.Values{}
	v.Set("q", q.Q)
	v.Set("sortBy", q.SortBy)
	v.Set("language", q.Language)
	return v
}
