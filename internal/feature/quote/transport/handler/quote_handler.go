// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_bridge/internal/feature/quote/transport/http/dto"
	"quote_bridge/internal/feature/quote/usecase"
)

// QuoteUsecase は株価取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	Fetch(ctx context.Context, symbol string) usecase.Result
}

// QuoteHandler は株価スナップショットのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote は銘柄コードを受け取り、正規化した株価をJSONで返します。
// 上流のエラーは502 Bad Gatewayと{"error": ...}で返します。
// シグネチャは生成済みのapi.ServerInterfaceに合わせています。
//
// エンドポイント例:
// GET /quote/AAPL
func (h *QuoteHandler) GetQuote(c *gin.Context, symbol string) {
	res := h.uc.Fetch(c.Request.Context(), symbol)
	if !res.OK() {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(res.Err))
		return
	}

	// キャッシュは行わないため、中間プロキシにも保存させない
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.NewQuoteResponse(res.Quote))
}
