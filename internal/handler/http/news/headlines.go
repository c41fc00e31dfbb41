package news

import (
	"context"
	"net/http"

	"newsbrief/internal/handler/http/respond"
	newsUC "newsbrief/internal/usecase/news"
)

type HeadlinesHandler struct{ Svc *newsUC.Service }

// ServeHTTP トップニュース取得
// @Summary      トップニュース取得
// @Description  カテゴリ別のトップニュースを取得します。"bbc" は BBC News のソースに対応します。レスポンスはニュースAPIの本文をそのまま返します。
// @Tags         news
// @Produce      json
// @Param        category query string false "カテゴリ (default: general)"
// @Success      200 {object} entity.ArticlesResponse "ニュースAPIのレスポンス"
// @Failure      500 {object} respond.MessageBody "Error fetching news from external API"
// @Router       /api/news [get]
func (h HeadlinesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// クライアント切断で外部呼び出しを中断しない
	ctx := context.WithoutCancel(r.Context())

	body, err := h.Svc.Headlines(ctx, r.URL.Query().Get("category"))
	if err != nil {
		respond.SafeError(w, r, respond.NewAppError(http.StatusInternalServerError, MsgFetchFailed, err))
		return
	}
	respond.Raw(w, http.StatusOK, body)
}
