// Package view holds the client-side interaction model: the article list
// state machine, the summary panel state machine, and plain-text rendering
// of article cards. It performs no I/O of its own; callers issue the
// requests the state machines ask for and feed the results back in.
package view

import (
	"strings"

	"newsbrief/internal/domain/entity"
)

// ListStatus is the lifecycle of the article list.
type ListStatus int

// List lifecycle: idle → loading → (success | error).
const (
	ListIdle ListStatus = iota
	ListLoading
	ListSuccess
	ListError
)

func (s ListStatus) String() string {
	switch s {
	case ListIdle:
		return "idle"
	case ListLoading:
		return "loading"
	case ListSuccess:
		return "success"
	case ListError:
		return "error"
	default:
		return "unknown"
	}
}

// User-facing list messages.
const (
	ListErrorMessage = "Could not fetch news. Ensure the backend server is running."
	NoArticlesText   = "No articles found."
)

// Fetch describes the list request a caller should issue.
// Exactly one of Category and Query is set.
type Fetch struct {
	Category string
	Query    string
}

// IsSearch reports whether the fetch is a full-text search.
func (f Fetch) IsSearch() bool {
	return f.Query != ""
}

// ListState tracks the article list shown to the user.
type ListState struct {
	Category    string
	Query       string
	SearchInput string
	Status      ListStatus
	Articles    []entity.Article
	Err         string
}

// NewListState returns an idle list showing category.
func NewListState(category string) *ListState {
	return &ListState{Category: category, Status: ListIdle}
}

// Load starts a fetch for the current selection.
func (s *ListState) Load() Fetch {
	s.Status = ListLoading
	s.Err = ""
	if s.Query != "" {
		return Fetch{Query: s.Query}
	}
	return Fetch{Category: s.Category}
}

// SelectCategory switches to category, clearing any search, and starts a fetch.
func (s *ListState) SelectCategory(category string) Fetch {
	s.Query = ""
	s.SearchInput = ""
	s.Category = category
	return s.Load()
}

// SubmitSearch switches to a search for q, clearing the category, and
// starts a fetch. A blank q is ignored and ok is false.
func (s *ListState) SubmitSearch(q string) (f Fetch, ok bool) {
	s.SearchInput = q
	q = strings.TrimSpace(q)
	if q == "" {
		return Fetch{}, false
	}
	s.Category = ""
	s.Query = q
	return s.Load(), true
}

// Resolve records the outcome of the most recent fetch.
func (s *ListState) Resolve(articles []entity.Article, err error) {
	if err != nil {
		s.Status = ListError
		s.Err = oneLine(err.Error())
		s.Articles = nil
		return
	}
	s.Status = ListSuccess
	s.Err = ""
	s.Articles = articles
}

// Heading is the title shown above the list.
// names maps category queries to display names.
func (s *ListState) Heading(names map[string]string) string {
	if s.Query != "" {
		return `Search Results for: "` + s.Query + `"`
	}
	if name, ok := names[s.Category]; ok {
		return name
	}
	return "General"
}

func oneLine(msg string) string {
	if i := strings.IndexAny(msg, "\r\n"); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(msg)
}
