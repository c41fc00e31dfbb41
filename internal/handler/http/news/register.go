// Package news provides the headline and search HTTP handlers.
package news

import (
	"net/http"

	newsUC "newsbrief/internal/usecase/news"
)

// Client-facing error messages.
const (
	MsgFetchFailed   = "Error fetching news from external API"
	MsgSearchFailed  = "Error searching news from external API"
	MsgQueryRequired = "Search query (q) is required"
)

// Register registers the news routes on mux.
func Register(mux *http.ServeMux, svc *newsUC.Service) {
	mux.Handle("GET /api/news", HeadlinesHandler{Svc: svc})
	mux.Handle("GET /api/search", SearchHandler{Svc: svc})
}
