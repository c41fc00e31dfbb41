package view

import (
	"fmt"
	"io"
	"strings"

	"newsbrief/internal/domain/entity"
)

const cardRule = "────────────────────────────────────────"

// RenderCard writes a plain-text article card numbered n.
// Missing description, source and image fall back to display defaults.
func RenderCard(w io.Writer, n int, a entity.Article) error {
	_, err := fmt.Fprintf(w, "%s\n[%d] %s\n    %s\n    %s\n    %s\n    image: %s\n",
		cardRule,
		n,
		strings.ToUpper(a.DisplaySource()),
		a.Title,
		a.DisplayDescription(),
		a.URL,
		a.DisplayImage(),
	)
	return err
}

// RenderList writes the list heading followed by its cards, or the
// loading, error or empty message for the current state.
func RenderList(w io.Writer, s *ListState, names map[string]string) error {
	if _, err := fmt.Fprintf(w, "== %s ==\n", s.Heading(names)); err != nil {
		return err
	}
	switch s.Status {
	case ListLoading:
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	case ListError:
		_, err := fmt.Fprintln(w, ListErrorMessage)
		return err
	}
	if len(s.Articles) == 0 {
		_, err := fmt.Fprintln(w, NoArticlesText)
		return err
	}
	for i, a := range s.Articles {
		if err := RenderCard(w, i+1, a); err != nil {
			return err
		}
	}
	return nil
}

// RenderPanel writes the summary panel for its current state.
func RenderPanel(w io.Writer, p *SummaryPanel) error {
	if p.Article == nil {
		return nil
	}
	var body string
	switch p.Status {
	case PanelOpening, PanelSummarizing:
		body = SummarizingText
	case PanelSummarized:
		body = p.Summary
	case PanelError:
		body = p.Err
	}
	_, err := fmt.Fprintf(w, "%s\nAI Summary: %s\n\n%s\n\nRead Full Article: %s\n%s\n",
		cardRule, p.Article.Title, body, p.Article.URL, cardRule)
	return err
}
