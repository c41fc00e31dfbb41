package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is a selectable headline category shown to readers.
type Category struct {
	Name  string `yaml:"name"`
	Query string `yaml:"query"`
}

// NewsCatalog describes how headline categories map onto provider queries.
type NewsCatalog struct {
	// Country is the region used for category headlines.
	Country string `yaml:"country"`
	// DefaultCategory is used when the caller supplies none.
	DefaultCategory string `yaml:"default_category"`
	// Categories is the ordered list of tabs offered to readers.
	Categories []Category `yaml:"categories"`
	// Sources maps reserved category tokens to a provider source id.
	// A reserved token is queried by source instead of by category.
	Sources map[string]string `yaml:"sources"`
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *NewsCatalog {
	return &NewsCatalog{
		Country:         "us",
		DefaultCategory: "general",
		Categories: []Category{
			{Name: "General", Query: "general"},
			{Name: "Business", Query: "business"},
			{Name: "Technology", Query: "technology"},
			{Name: "Sports", Query: "sports"},
			{Name: "Entertainment", Query: "entertainment"},
			{Name: "Health", Query: "health"},
			{Name: "Science", Query: "science"},
			{Name: "BBC News", Query: "bbc"},
		},
		Sources: map[string]string{
			"bbc": "bbc-news",
		},
	}
}

// LoadCatalog reads a catalog from a YAML file. An empty path yields the
// built-in catalog. Fields left empty in the file keep their built-in values.
// The path is expected to come from a trusted source (environment or flag).
func LoadCatalog(path string) (*NewsCatalog, error) {
	catalog := DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	// #nosec G304 -- path is provided by the operator, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var fromFile NewsCatalog
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if fromFile.Country != "" {
		catalog.Country = fromFile.Country
	}
	if fromFile.DefaultCategory != "" {
		catalog.DefaultCategory = fromFile.DefaultCategory
	}
	if len(fromFile.Categories) > 0 {
		catalog.Categories = fromFile.Categories
	}
	if fromFile.Sources != nil {
		catalog.Sources = fromFile.Sources
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return catalog, nil
}

// Validate checks the catalog for unusable entries.
func (c *NewsCatalog) Validate() error {
	if c.Country == "" {
		return fmt.Errorf("country is required")
	}
	if c.DefaultCategory == "" {
		return fmt.Errorf("default_category is required")
	}
	if _, reserved := c.Sources[c.DefaultCategory]; reserved {
		return fmt.Errorf("default_category %q must not be a reserved source token", c.DefaultCategory)
	}
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Query) == "" {
			return fmt.Errorf("categories[%d].query is required", i)
		}
	}
	for token, source := range c.Sources {
		if token == "" || source == "" {
			return fmt.Errorf("sources entries must have a token and a source id")
		}
	}
	return nil
}

// CategoryNames maps each category query to its display name.
func (c *NewsCatalog) CategoryNames() map[string]string {
	names := make(map[string]string, len(c.Categories))
	for _, cat := range c.Categories {
		names[cat.Query] = cat.Name
	}
	return names
}
