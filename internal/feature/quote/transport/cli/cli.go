// Package cli はquoteコマンドの引数処理と出力を提供します。
package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"quote_bridge/internal/feature/quote/domain/entity"
	"quote_bridge/internal/feature/quote/transport/http/dto"
	"quote_bridge/internal/feature/quote/usecase"
)

const (
	// ExitOK は取得の成否に関わらず、JSONを出力できた場合の終了コードです。
	ExitOK = 0
	// ExitUsage はシンボルが指定されなかった場合の終了コードです。
	ExitUsage = 1
)

// QuoteUsecase は株価取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（cli）側で定義します。
type QuoteUsecase interface {
	Fetch(ctx context.Context, symbol string) usecase.Result
}

// Runner はコマンドライン引数を受け取り、結果のJSONを1行出力します。
type Runner struct {
	uc QuoteUsecase
}

// NewRunner は指定されたusecaseでRunnerの新しいインスタンスを生成します。
func NewRunner(uc QuoteUsecase) *Runner {
	return &Runner{uc: uc}
}

// Run はargs[0]の銘柄を取得して結果をstdoutに書き出し、終了コードを返します。
// 引数が無い場合のみExitUsageを返し、上流のエラーはJSONの"error"キーで表現します。
func (r *Runner) Run(ctx context.Context, args []string, stdout io.Writer) int {
	if len(args) == 0 {
		writeJSON(stdout, dto.NewErrorResponse(entity.ErrNoSymbol))
		return ExitUsage
	}

	res := r.uc.Fetch(ctx, args[0])
	if !res.OK() {
		writeJSON(stdout, dto.NewErrorResponse(res.Err))
		return ExitOK
	}
	if err := encode(stdout, dto.NewQuoteResponse(res.Quote)); err != nil {
		writeJSON(stdout, dto.NewErrorResponse(err))
	}
	return ExitOK
}

// encode はvをJSONにしてから書き込むため、失敗時に部分的な出力が残りません。
func encode(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func writeJSON(w io.Writer, v any) {
	if err := encode(w, v); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}
