// Package dto はドメインエンティティを生成済みのAPIレスポンス型に変換します。
package dto

import (
	"quote_bridge/internal/api"
	"quote_bridge/internal/feature/quote/domain/entity"
)

// NewQuoteResponse はドメインエンティティをapi.QuoteResponseに変換します。
// 時間外取引のフィールドは上流が値を返した場合のみ設定されます。
func NewQuoteResponse(q *entity.Quote) api.QuoteResponse {
	out := api.QuoteResponse{
		Symbol:        q.Symbol,
		Name:          q.Name,
		Price:         q.Price,
		PreviousClose: q.PreviousClose,
		Open:          q.Open,
		High:          q.High,
		Low:           q.Low,
		Volume:        q.Volume,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		Currency:      q.Currency,
		Exchange:      q.Exchange,
		MarketState:   q.MarketState,
		Timestamp:     q.Timestamp,
	}
	if s := q.PreMarket; s != nil {
		out.PreMarketPrice = &s.Price
		out.PreMarketChange = &s.Change
		out.PreMarketChangePercent = &s.ChangePercent
	}
	if s := q.PostMarket; s != nil {
		out.PostMarketPrice = &s.Price
		out.PostMarketChange = &s.Change
		out.PostMarketChangePercent = &s.ChangePercent
	}
	return out
}

// NewErrorResponse はエラーをapi.ErrorResponseに変換します。nilの場合はデータ無しとして扱います。
func NewErrorResponse(err error) api.ErrorResponse {
	if err == nil {
		err = entity.ErrNoData
	}
	return api.ErrorResponse{Error: err.Error()}
}
