package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"quote_bridge/internal/feature/quote/domain/entity"
	"quote_bridge/internal/feature/quote/usecase"
	"quote_bridge/internal/platform/externalapi/yahoo/dto"
)

// ChartRepository はYahoo Financeのchart APIから株価スナップショットを取得するQuoteRepository実装です。
type ChartRepository struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

// ChartRepositoryがQuoteRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.QuoteRepository = (*ChartRepository)(nil)

// NewChartRepository は指定された設定とHTTPクライアントでChartRepositoryの新しいインスタンスを生成します。
func NewChartRepository(cfg Config, client *http.Client) *ChartRepository {
	return &ChartRepository{cfg: cfg, client: client, now: time.Now}
}

// GetQuote はchart APIから直近2日分の日足を取得し、
// メタ情報と最新サンプルからentity.Quoteを組み立てます。
func (r *ChartRepository) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	now := r.now()

	// クエリパラメータを追加
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(now.Add(-Lookback).Unix(), 10))
	q.Set("period2", strconv.FormatInt(now.Unix(), 10))
	q.Set("interval", "1d")
	q.Set("includePrePost", "true")
	q.Set("events", "div,split")

	// URLを生成
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s",
		strings.TrimRight(r.cfg.BaseURL, "/"), url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	slog.Debug("querying yahoo chart", "symbol", symbol)
	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 400 {
		return nil, &HTTPError{StatusCode: res.StatusCode, Body: string(raw)}
	}

	// JSONレスポンスをDTOにデコード
	var body dto.ChartResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if present(body.Chart.Error) {
		return nil, upstreamError(body.Chart.Error)
	}
	if len(body.Chart.Result) == 0 {
		return nil, entity.ErrNoData
	}

	return toQuote(symbol, body.Chart.Result[0], now)
}

// toQuote はchart.result[0]をドメインエンティティに変換します。
// 上流で欠けている値はそれぞれのフォールバックで補完します。
func toQuote(symbol string, res dto.ChartResult, now time.Time) (*entity.Quote, error) {
	meta := res.Meta
	var series dto.QuoteSeries
	if len(res.Indicators.Quote) > 0 {
		series = res.Indicators.Quote[0]
	}

	if len(series.Close) == 0 {
		return nil, entity.ErrNoPriceData
	}

	// 現在値: regularMarketPrice、なければ終値系列の最後
	var price float64
	switch {
	case meta.RegularMarketPrice != nil:
		price = *meta.RegularMarketPrice
	default:
		c, ok := last(series.Close)
		if !ok {
			return nil, entity.ErrNoPriceData
		}
		price = c
	}

	// 前日終値: previousClose → chartPreviousClose → 現在値
	prevClose := price
	switch {
	case meta.PreviousClose != nil:
		prevClose = *meta.PreviousClose
	case meta.ChartPreviousClose != nil:
		prevClose = *meta.ChartPreviousClose
	}

	change, changePct := entity.Change(price, prevClose)

	volume, err := toVolume(series.Volume)
	if err != nil {
		return nil, err
	}

	q := &entity.Quote{
		Symbol:        symbol,
		Name:          firstString(symbol, meta.LongName, meta.ShortName),
		Price:         price,
		PreviousClose: prevClose,
		Open:          lastOr(series.Open, price),
		High:          lastOr(series.High, price),
		Low:           lastOr(series.Low, price),
		Volume:        volume,
		Change:        change,
		ChangePercent: changePct,
		Currency:      firstString("USD", meta.Currency),
		Exchange:      firstString("", meta.ExchangeName),
		MarketState:   firstString("REGULAR", meta.MarketState),
		Timestamp:     now.Unix(),
	}
	if meta.RegularMarketTime != nil {
		q.Timestamp = *meta.RegularMarketTime
	}

	// 時間外取引は上流が価格を返した場合のみ設定する
	if meta.PreMarketPrice != nil {
		q.PreMarket = &entity.Session{
			Price:         *meta.PreMarketPrice,
			Change:        deref(meta.PreMarketChange),
			ChangePercent: deref(meta.PreMarketChangePercent),
		}
	}
	if meta.PostMarketPrice != nil {
		q.PostMarket = &entity.Session{
			Price:         *meta.PostMarketPrice,
			Change:        deref(meta.PostMarketChange),
			ChangePercent: deref(meta.PostMarketChangePercent),
		}
	}
	return q, nil
}

// present はJSONの値が設定されていて、かつ空でないかを判定します。
// null、false、ゼロの数値、""、{}、[]は未設定として扱います。
func present(raw json.RawMessage) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return true
}

// upstreamError はchart.errorをUpstreamErrorにデコードします。
func upstreamError(raw json.RawMessage) error {
	var ce dto.ChartError
	if err := json.Unmarshal(raw, &ce); err != nil {
		return err
	}
	ue := &UpstreamError{Description: firstString("Unknown error", ce.Description)}
	if ce.Code != nil {
		ue.Code = *ce.Code
	}
	return ue
}

// last はsの最後のサンプルを返します。sが空か最後がnullの場合はfalseを返します。
func last(s []*float64) (float64, bool) {
	if len(s) == 0 || s[len(s)-1] == nil {
		return 0, false
	}
	return *s[len(s)-1], true
}

func lastOr(s []*float64, def float64) float64 {
	if v, ok := last(s); ok {
		return v
	}
	return def
}

// toVolume は最後の出来高をint64に変換します。int64で表せない値はエラーになります。
func toVolume(s []*float64) (int64, error) {
	v := lastOr(s, 0)
	if v >= math.MaxInt64 || v < math.MinInt64 {
		return 0, fmt.Errorf("volume out of range: %g", v)
	}
	return int64(v), nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// firstString は最初に設定されている候補を返します。どれも無ければdefを返します。
func firstString(def string, candidates ...*string) string {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return def
}
