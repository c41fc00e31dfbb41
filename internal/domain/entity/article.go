// Package entity defines the domain objects exchanged with the news provider
// and the summarization pipeline. Entities are request-scoped and never persisted.
package entity

// Display fallbacks used when the provider omits optional article fields.
const (
	DefaultDescription = "No description available."
	DefaultSourceName  = "Unknown Source"
	PlaceholderImage   = "https://placehold.co/600x400/1a1a1a/ffd700?text=News"
)

// ArticleSource identifies the publisher of an article as reported by the provider.
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is a single news item exactly as returned by the news provider.
// The backend forwards provider payloads untouched; this type is only decoded
// by clients that render article cards.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     string        `json:"content"`
}

// DisplayDescription returns the description or the display fallback.
func (a Article) DisplayDescription() string {
	if a.Description == "" {
		return DefaultDescription
	}
	return a.Description
}

// DisplaySource returns the source name or the display fallback.
func (a Article) DisplaySource() string {
	if a.Source.Name == "" {
		return DefaultSourceName
	}
	return a.Source.Name
}

// DisplayImage returns the image URL or a placeholder image.
func (a Article) DisplayImage() string {
	if a.URLToImage == "" {
		return PlaceholderImage
	}
	return a.URLToImage
}

// ArticlesResponse is the provider's article collection envelope.
type ArticlesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`

	// Code and Message are only set when Status is "error".
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// SummaryRequest is the body accepted by the summarize endpoint.
type SummaryRequest struct {
	URL string `json:"url"`
}

// SummaryResult is the body returned by the summarize endpoint.
type SummaryResult struct {
	Summary string `json:"summary"`
}
