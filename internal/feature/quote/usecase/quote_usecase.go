// Package usecase は株価スナップショット取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"quote_bridge/internal/feature/quote/domain/entity"
)

// QuoteRepository は株価スナップショットを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

// Result は取得結果（Quote）かエラーのどちらか一方を保持します。
type Result struct {
	Quote *entity.Quote
	Err   error
}

// OK は結果がQuoteであればtrueを返します。
func (r Result) OK() bool {
	return r.Err == nil && r.Quote != nil
}

// QuoteUsecase は1銘柄の株価を取得するユースケースを定義します。
type QuoteUsecase struct {
	market QuoteRepository
}

// NewQuoteUsecase は新しい QuoteUsecase を作成します。
func NewQuoteUsecase(market QuoteRepository) *QuoteUsecase {
	return &QuoteUsecase{market: market}
}

// Fetch は指定された銘柄の株価を取得します。
// シンボルの形式は検証せず、空文字列もそのまま上流に問い合わせます。
// 失敗はすべてResult.Errに変換され、panicもここで回収されるため、呼び出し元にエラーが漏れることはありません。
func (u *QuoteUsecase) Fetch(ctx context.Context, symbol string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("quote fetch panicked", "symbol", symbol, "panic", r)
			res = Result{Err: fmt.Errorf("%v", r)}
		}
	}()

	q, err := u.market.GetQuote(ctx, symbol)
	if err != nil {
		slog.Debug("quote fetch failed", "symbol", symbol, "error", err)
		return Result{Err: err}
	}
	if q == nil {
		return Result{Err: entity.ErrNoData}
	}
	return Result{Quote: q}
}
