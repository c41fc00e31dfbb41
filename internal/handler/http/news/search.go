package news

import (
	"context"
	"errors"
	"net/http"

	"newsbrief/internal/handler/http/respond"
	newsUC "newsbrief/internal/usecase/news"
)

type SearchHandler struct{ Svc *newsUC.Service }

// ServeHTTP ニュース検索
// @Summary      ニュース検索
// @Description  全ソースを対象に英語記事を人気順で検索します。レスポンスはニュースAPIの本文をそのまま返します。
// @Tags         news
// @Produce      json
// @Param        q query string true "検索キーワード"
// @Success      200 {object} entity.ArticlesResponse "ニュースAPIのレスポンス"
// @Failure      400 {object} respond.MessageBody "Search query (q) is required"
// @Failure      500 {object} respond.MessageBody "Error searching news from external API"
// @Router       /api/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	body, err := h.Svc.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, newsUC.ErrMissingQuery) {
			respond.SafeError(w, r, respond.NewAppError(http.StatusBadRequest, MsgQueryRequired, nil))
			return
		}
		respond.SafeError(w, r, respond.NewAppError(http.StatusInternalServerError, MsgSearchFailed, err))
		return
	}
	respond.Raw(w, http.StatusOK, body)
}
