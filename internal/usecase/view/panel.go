package view

import (
	"newsbrief/internal/domain/entity"
)

// PanelStatus is the lifecycle of the summary panel.
type PanelStatus int

// Panel lifecycle: closed → opening → summarizing → (summarized | error) → closed.
const (
	PanelClosed PanelStatus = iota
	PanelOpening
	PanelSummarizing
	PanelSummarized
	PanelError
)

func (s PanelStatus) String() string {
	switch s {
	case PanelClosed:
		return "closed"
	case PanelOpening:
		return "opening"
	case PanelSummarizing:
		return "summarizing"
	case PanelSummarized:
		return "summarized"
	case PanelError:
		return "error"
	default:
		return "unknown"
	}
}

// Summary panel messages.
const (
	SummarizingText       = "Generating AI summary..."
	DefaultSummaryFailure = "Failed to get summary"
)

// SummaryPanel holds the summary for one selected article at a time.
type SummaryPanel struct {
	Article *entity.Article
	Status  PanelStatus
	Summary string
	Err     string
}

// Open selects article and resets any previous summary or error.
func (p *SummaryPanel) Open(article entity.Article) {
	p.Article = &article
	p.Status = PanelOpening
	p.Summary = ""
	p.Err = ""
}

// ShouldSummarize reports whether the summarize call should be issued now.
// It is true only in the opening state, so it fires once per Open.
func (p *SummaryPanel) ShouldSummarize() bool {
	return p.Article != nil && p.Status == PanelOpening
}

// Begin marks the summarize call as in flight and returns the article URL.
// ok is false when no call should be issued.
func (p *SummaryPanel) Begin() (url string, ok bool) {
	if !p.ShouldSummarize() {
		return "", false
	}
	p.Status = PanelSummarizing
	return p.Article.URL, true
}

// Resolve records the summarize outcome. It is ignored unless a call is in
// flight, so a late result for a closed panel is dropped.
func (p *SummaryPanel) Resolve(summary string, err error) {
	if p.Status != PanelSummarizing {
		return
	}
	if err != nil {
		p.Status = PanelError
		p.Err = oneLine(err.Error())
		if p.Err == "" {
			p.Err = DefaultSummaryFailure
		}
		return
	}
	p.Status = PanelSummarized
	p.Summary = summary
}

// Close deselects the article.
func (p *SummaryPanel) Close() {
	p.Article = nil
	p.Status = PanelClosed
}

// IsOpen reports whether an article is selected.
func (p *SummaryPanel) IsOpen() bool {
	return p.Status != PanelClosed
}
