package summarize_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsbrief/internal/handler/http/summarize"
	"newsbrief/internal/infra/scraper"
	sumUC "newsbrief/internal/usecase/summarize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ───────── スタブ実装 ───────── */

type stubScraper struct {
	text   string
	err    error
	calls  int
	ctxErr error
}

func (s *stubScraper) Scrape(ctx context.Context, _ string) (string, error) {
	s.calls++
	s.ctxErr = ctx.Err()
	return s.text, s.err
}

type stubModel struct {
	summary string
	err     error
	prompts []string
}

func (s *stubModel) Summarize(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.summary, s.err
}

func (s *stubModel) Provider() string { return "stub" }

func serve(t *testing.T, scraper *stubScraper, model *stubModel, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	summarize.Register(mux, sumUC.NewService(scraper, model))

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	scraper := &stubScraper{text: "Paragraph one.\n\nParagraph two."}
	model := &stubModel{summary: "1\n2\n3\n4\n5"}

	rec := serve(t, scraper, model, `{"url":"https://example.com/story"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary":"1\n2\n3\n4\n5"}`, rec.Body.String())
	require.Len(t, model.prompts, 1)
	assert.True(t, strings.HasSuffix(model.prompts[0], "\n\nHere is the article:\n\nParagraph one.\n\nParagraph two."))
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		scraper     *stubScraper
		model       *stubModel
		wantCode    int
		wantMessage string
		wantPrompts int
	}{
		{
			name:        "missing url",
			body:        `{}`,
			scraper:     &stubScraper{text: "x"},
			model:       &stubModel{summary: "s"},
			wantCode:    http.StatusBadRequest,
			wantMessage: summarize.MsgURLRequired,
		},
		{
			name:        "empty url",
			body:        `{"url":""}`,
			scraper:     &stubScraper{text: "x"},
			model:       &stubModel{summary: "s"},
			wantCode:    http.StatusBadRequest,
			wantMessage: summarize.MsgURLRequired,
		},
		{
			name:        "malformed body",
			body:        `{"url":`,
			scraper:     &stubScraper{text: "x"},
			model:       &stubModel{summary: "s"},
			wantCode:    http.StatusBadRequest,
			wantMessage: summarize.MsgURLRequired,
		},
		{
			name:        "empty body",
			body:        ``,
			scraper:     &stubScraper{text: "x"},
			model:       &stubModel{summary: "s"},
			wantCode:    http.StatusBadRequest,
			wantMessage: summarize.MsgURLRequired,
		},
		{
			name:        "fetch failure",
			body:        `{"url":"https://example.com"}`,
			scraper:     &stubScraper{err: errors.New("article host returned status 403")},
			model:       &stubModel{summary: "s"},
			wantCode:    http.StatusInternalServerError,
			wantMessage: summarize.MsgFetchFailed,
		},
		{
			name:        "no article text",
			body:        `{"url":"https://example.com"}`,
			scraper:     &stubScraper{text: ""},
			model:       &stubModel{summary: "s"},
			wantCode:    http.StatusInternalServerError,
			wantMessage: summarize.MsgNoArticleText,
		},
		{
			name:        "model failure",
			body:        `{"url":"https://example.com"}`,
			scraper:     &stubScraper{text: "text"},
			model:       &stubModel{err: errors.New("gemini api error: 429")},
			wantCode:    http.StatusInternalServerError,
			wantMessage: summarize.MsgSummaryFailed,
			wantPrompts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.scraper, tt.model, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, `{"message":"`+tt.wantMessage+`"}`, rec.Body.String())
			assert.Len(t, tt.model.prompts, tt.wantPrompts)
		})
	}
}

func TestHandler_ClientDisconnectDoesNotCancelScrape(t *testing.T) {
	scraper := &stubScraper{text: "text"}
	mux := http.NewServeMux()
	summarize.Register(mux, sumUC.NewService(scraper, &stubModel{summary: "s"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"url":"https://example.com"}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, 1, scraper.calls)
	assert.NoError(t, scraper.ctxErr)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	mux := http.NewServeMux()
	summarize.Register(mux, sumUC.NewService(&stubScraper{}, &stubModel{}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summarize", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_WithScraper(t *testing.T) {
	pages := map[string]string{
		"/story": `<html><body><h1>Storm</h1>
<p>A storm hit the coast overnight.</p>
<p>Thousands lost power.</p>
<p>Crews expect repairs by Friday.</p>
</body></html>`,
		"/no-paragraphs": `<html><body><div>Only a div here.</div><span>And a span.</span></body></html>`,
	}
	articleSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		html, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	defer articleSrv.Close()

	cfg := scraper.DefaultConfig()
	cfg.DenyPrivateIPs = false
	cfg.Timeout = 2 * time.Second

	tests := []struct {
		name        string
		path        string
		wantCode    int
		wantBody    string
		wantPrompts []string
	}{
		{
			name:     "three paragraphs",
			path:     "/story",
			wantCode: http.StatusOK,
			wantBody: `{"summary":"Storm summary."}`,
			wantPrompts: []string{
				sumUC.Instruction + "\n\nHere is the article:\n\n" +
					"A storm hit the coast overnight.\n\nThousands lost power.\n\nCrews expect repairs by Friday.",
			},
		},
		{
			name:     "no paragraphs",
			path:     "/no-paragraphs",
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Could not extract article text. The website might be blocking scrapers or has an unusual format."}`,
		},
		{
			name:     "host refuses scrapers",
			path:     "/blocked",
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Failed to fetch article from URL."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scraper.New(cfg, scraper.StrategyParagraph)
			require.NoError(t, err)
			model := &stubModel{summary: "Storm summary."}

			mux := http.NewServeMux()
			summarize.Register(mux, sumUC.NewService(s, model))

			body := `{"url":"` + articleSrv.URL + tt.path + `"}`
			req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantPrompts, model.prompts)
		})
	}
}
