// Package summarize provides the scrape-and-summarize HTTP handler.
package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"newsbrief/internal/domain/entity"
	"newsbrief/internal/handler/http/respond"
	sumUC "newsbrief/internal/usecase/summarize"
)

// Client-facing error messages.
const (
	MsgURLRequired   = "Article URL is required"
	MsgFetchFailed   = "Failed to fetch article from URL."
	MsgNoArticleText = "Could not extract article text. The website might be blocking scrapers or has an unusual format."
	MsgSummaryFailed = "Failed to generate AI summary."
)

// Register registers the summarize route on mux.
func Register(mux *http.ServeMux, svc *sumUC.Service) {
	mux.Handle("POST /api/summarize", Handler{Svc: svc})
}

// Handler serves POST /api/summarize.
type Handler struct{ Svc *sumUC.Service }

// ServeHTTP 記事要約
// @Summary      記事要約
// @Description  指定URLの記事本文を取得し、AIで5〜6行の要約を生成します。
// @Tags         summarize
// @Accept       json
// @Produce      json
// @Param        request body entity.SummaryRequest true "記事URL"
// @Success      200 {object} entity.SummaryResult "要約"
// @Failure      400 {object} respond.MessageBody "Article URL is required"
// @Failure      500 {object} respond.MessageBody "記事取得・本文抽出・要約生成の失敗"
// @Router       /api/summarize [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req entity.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, r, respond.NewAppError(http.StatusBadRequest, MsgURLRequired, nil))
		return
	}

	ctx := context.WithoutCancel(r.Context())

	result, err := h.Svc.Summarize(ctx, req.URL)
	if err != nil {
		respond.SafeError(w, r, mapError(err))
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func mapError(err error) *respond.AppError {
	switch {
	case errors.Is(err, sumUC.ErrMissingURL):
		return respond.NewAppError(http.StatusBadRequest, MsgURLRequired, nil)
	case errors.Is(err, sumUC.ErrScrapeFailed):
		return respond.NewAppError(http.StatusInternalServerError, MsgFetchFailed, err)
	case errors.Is(err, sumUC.ErrNoArticleText):
		return respond.NewAppError(http.StatusInternalServerError, MsgNoArticleText, err)
	default:
		return respond.NewAppError(http.StatusInternalServerError, MsgSummaryFailed, err)
	}
}
