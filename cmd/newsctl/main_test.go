package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"newsbrief/internal/config"
	"newsbrief/internal/domain/entity"
	"newsbrief/internal/infra/apiclient"
	"newsbrief/internal/usecase/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ───────── スタブ実装 ───────── */

type stubAPI struct {
	articles   []entity.Article
	listErr    error
	summary    string
	summaryErr error

	categories []string
	queries    []string
	summarized []string
}

func (s *stubAPI) Headlines(_ context.Context, category string) ([]entity.Article, error) {
	s.categories = append(s.categories, category)
	return s.articles, s.listErr
}

func (s *stubAPI) Search(_ context.Context, q string) ([]entity.Article, error) {
	s.queries = append(s.queries, q)
	return s.articles, s.listErr
}

func (s *stubAPI) Summarize(_ context.Context, articleURL string) (string, error) {
	s.summarized = append(s.summarized, articleURL)
	return s.summary, s.summaryErr
}

func newTestApp(api *stubAPI, stdin string) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &app{
		api:     api,
		catalog: config.DefaultCatalog(),
		stdin:   strings.NewReader(stdin),
		stdout:  &stdout,
		stderr:  &stderr,
	}, &stdout, &stderr
}

func sampleArticles() []entity.Article {
	return []entity.Article{
		{Title: "Markets rally", URL: "https://example.com/markets", Source: entity.ArticleSource{Name: "Reuters"}},
		{Title: "Untitled source", URL: "https://example.com/other"},
	}
}

/* ───────── テスト ───────── */

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "no command", args: nil, wantCode: 2, wantErr: "Usage: newsctl"},
		{name: "unknown command", args: []string{"frobnicate"}, wantCode: 2, wantErr: "Unknown command 'frobnicate'"},
		{name: "help", args: []string{"help"}, wantCode: 0, wantErr: "Commands:"},
		{name: "search without q", args: []string{"search"}, wantCode: 2, wantErr: "--q is required"},
		{name: "search blank q", args: []string{"search", "-q", "   "}, wantCode: 2, wantErr: "--q is required"},
		{name: "summarize without url", args: []string{"summarize"}, wantCode: 2, wantErr: "--url is required"},
		{name: "bad flag", args: []string{"headlines", "-nope"}, wantCode: 2, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAPI{}
			a, _, stderr := newTestApp(api, "")

			code := a.run(context.Background(), tt.args)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr.String(), tt.wantErr)
			assert.Empty(t, api.queries)
			assert.Empty(t, api.summarized)
		})
	}
}

func TestRun_Headlines(t *testing.T) {
	api := &stubAPI{articles: sampleArticles()}
	a, stdout, _ := newTestApp(api, "")

	code := a.run(context.Background(), []string{"headlines", "-category", "bbc"})

	require.Equal(t, 0, code)
	assert.Equal(t, []string{"bbc"}, api.categories)
	out := stdout.String()
	assert.Contains(t, out, "== BBC News ==")
	assert.Contains(t, out, "[1] REUTERS")
	assert.Contains(t, out, strings.ToUpper(entity.DefaultSourceName))
	assert.Contains(t, out, entity.DefaultDescription)
}

func TestRun_HeadlinesDefaultCategory(t *testing.T) {
	api := &stubAPI{}
	a, stdout, _ := newTestApp(api, "")

	code := a.run(context.Background(), []string{"headlines"})

	require.Equal(t, 0, code)
	assert.Equal(t, []string{"general"}, api.categories)
	assert.Contains(t, stdout.String(), view.NoArticlesText)
}

func TestRun_HeadlinesError(t *testing.T) {
	api := &stubAPI{listErr: &apiclient.APIError{StatusCode: 500, Message: "Error fetching news from external API"}}
	a, stdout, stderr := newTestApp(api, "")

	code := a.run(context.Background(), []string{"headlines"})

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), view.ListErrorMessage)
	assert.Contains(t, stderr.String(), "Error: Error fetching news from external API")
}

func TestRun_SearchJSON(t *testing.T) {
	api := &stubAPI{articles: sampleArticles()}
	a, stdout, _ := newTestApp(api, "")

	code := a.run(context.Background(), []string{"search", "-q", " bitcoin ", "-output", "json"})

	require.Equal(t, 0, code)
	assert.Equal(t, []string{"bitcoin"}, api.queries)
	assert.Contains(t, stdout.String(), `"title": "Markets rally"`)
}

func TestRun_Summarize(t *testing.T) {
	tests := []struct {
		name       string
		summary    string
		summaryErr error
		wantCode   int
		wantOut    string
		wantErr    string
	}{
		{
			name:     "success",
			summary:  "Five lines of summary.",
			wantCode: 0,
			wantOut:  "Five lines of summary.\n",
		},
		{
			name:       "server error",
			summaryErr: &apiclient.APIError{StatusCode: 500, Message: "Failed to generate AI summary."},
			wantCode:   1,
			wantErr:    "Error: Failed to generate AI summary.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAPI{summary: tt.summary, summaryErr: tt.summaryErr}
			a, stdout, stderr := newTestApp(api, "")

			code := a.run(context.Background(), []string{"summarize", "-url", "https://example.com/a"})

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, []string{"https://example.com/a"}, api.summarized)
			assert.Equal(t, tt.wantOut, stdout.String())
			assert.Contains(t, stderr.String(), tt.wantErr)
		})
	}
}

func TestBrowse_Session(t *testing.T) {
	api := &stubAPI{articles: sampleArticles(), summary: "A short summary."}
	input := strings.Join([]string{
		"1",
		"x",
		"s   ",
		"s climate",
		"c sports",
		"9",
		"q",
	}, "\n")
	a, stdout, _ := newTestApp(api, input)

	code := a.run(context.Background(), []string{"browse"})

	require.Equal(t, 0, code)
	// initial load plus one category switch; the blank search is ignored
	assert.Equal(t, []string{"general", "sports"}, api.categories)
	assert.Equal(t, []string{"climate"}, api.queries)
	assert.Equal(t, []string{"https://example.com/markets"}, api.summarized)

	out := stdout.String()
	assert.Contains(t, out, "AI Summary: Markets rally")
	assert.Contains(t, out, view.SummarizingText)
	assert.Contains(t, out, "A short summary.")
	assert.Contains(t, out, `Search Results for: "climate"`)
	assert.Contains(t, out, "== Sports ==")
	assert.Contains(t, out, `unknown command "9"`)
}

func TestBrowse_SummaryError(t *testing.T) {
	api := &stubAPI{
		articles:   sampleArticles(),
		summaryErr: &apiclient.APIError{StatusCode: 500, Message: "Failed to fetch article from URL."},
	}
	a, stdout, _ := newTestApp(api, "2\n")

	code := a.run(context.Background(), []string{"browse"})

	require.Equal(t, 0, code)
	assert.Equal(t, []string{"https://example.com/other"}, api.summarized)
	assert.Contains(t, stdout.String(), "Failed to fetch article from URL.")
}

func TestBrowse_ListErrorKeepsRunning(t *testing.T) {
	api := &stubAPI{listErr: errors.New("dial tcp: connection refused")}
	a, stdout, _ := newTestApp(api, "1\ncats\nq\n")

	code := a.run(context.Background(), []string{"browse", "-category", "technology"})

	require.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, view.ListErrorMessage)
	assert.Contains(t, out, `unknown command "1"`)
	assert.Contains(t, out, "Technology")
	assert.Empty(t, api.summarized)
}
