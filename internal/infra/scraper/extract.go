package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Strategy names accepted by NewExtractor.
const (
	StrategyParagraph   = "paragraph"
	StrategyReadability = "readability"
)

// ParagraphSeparator joins the text of consecutive paragraphs.
const ParagraphSeparator = "\n\n"

// Extractor turns a fetched page into plain article text.
// An empty string with a nil error means the page had no usable text.
type Extractor interface {
	Extract(page *Page) (string, error)
	Name() string
}

// NewExtractor returns the extractor for a strategy name.
func NewExtractor(strategy string) (Extractor, error) {
	switch strategy {
	case "", StrategyParagraph:
		return ParagraphExtractor{}, nil
	case StrategyReadability:
		return ReadabilityExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown scrape strategy %q", strategy)
	}
}

// ParagraphExtractor concatenates the text of every <p> element in document
// order, separated by a blank line. Paragraphs that are empty after trimming
// are skipped, so a page whose only <p> elements are whitespace yields no
// text and is reported as unextractable. Whitespace-only paragraphs are
// deliberately not appended, unlike a plain per-<p> "text\n\n" concatenation.
type ParagraphExtractor struct{}

// Name implements Extractor.
func (ParagraphExtractor) Name() string { return StrategyParagraph }

// Extract implements Extractor.
func (ParagraphExtractor) Extract(page *Page) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.HTML))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, ParagraphSeparator), nil
}

// ReadabilityExtractor uses the Mozilla Readability algorithm to isolate the
// main article body.
type ReadabilityExtractor struct{}

// Name implements Extractor.
func (ReadabilityExtractor) Name() string { return StrategyReadability }

// Extract implements Extractor.
func (ReadabilityExtractor) Extract(page *Page) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(page.HTML), page.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return strings.TrimSpace(article.TextContent), nil
}
