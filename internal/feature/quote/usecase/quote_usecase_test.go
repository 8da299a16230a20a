package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote_bridge/internal/feature/quote/domain/entity"
	"quote_bridge/internal/feature/quote/usecase"
)

// ErrUpstream はモックと期待値の間で共有されるセンチネルエラーです。
var ErrUpstream = errors.New("dial tcp: connection refused")

// mockQuoteRepository はQuoteRepositoryインターフェースのモック実装です。
type mockQuoteRepository struct {
	GetQuoteFunc  func(ctx context.Context, symbol string) (*entity.Quote, error)
	GetQuoteCalls int
}

// GetQuote はGetQuoteFuncが設定されていればそれを呼び出し、呼び出し回数を記録します。
func (m *mockQuoteRepository) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	m.GetQuoteCalls++
	if m.GetQuoteFunc != nil {
		return m.GetQuoteFunc(ctx, symbol)
	}
	return nil, errors.New("GetQuoteFunc is not implemented")
}

// TestQuoteUsecase_Fetch はFetchがリポジトリの結果をResultに変換することを検証します。
func TestQuoteUsecase_Fetch(t *testing.T) {
	t.Parallel()

	quote := &entity.Quote{Symbol: "AAPL", Price: 150, PreviousClose: 100, Change: 50, ChangePercent: 50}

	tests := []struct {
		name      string
		symbol    string
		getQuote  func(ctx context.Context, symbol string) (*entity.Quote, error)
		wantQuote *entity.Quote
		wantErr   string
		wantCalls int
	}{
		{
			name:   "success: returns quote",
			symbol: "AAPL",
			getQuote: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				return quote, nil
			},
			wantQuote: quote,
			wantCalls: 1,
		},
		{
			name:   "error: repository error message is kept",
			symbol: "AAPL",
			getQuote: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				return nil, ErrUpstream
			},
			wantErr:   ErrUpstream.Error(),
			wantCalls: 1,
		},
		{
			name:   "error: nil quote without error",
			symbol: "AAPL",
			getQuote: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				return nil, nil
			},
			wantErr:   "No data available",
			wantCalls: 1,
		},
		{
			name:   "error: empty symbol is passed to upstream unvalidated",
			symbol: "",
			getQuote: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				assert.Equal(t, "", symbol)
				return nil, errors.New("HTTP 404: Not Found")
			},
			wantErr:   "HTTP 404: Not Found",
			wantCalls: 1,
		},
		{
			name:   "error: panic is recovered",
			symbol: "AAPL",
			getQuote: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				panic("runtime error: index out of range [0] with length 0")
			},
			wantErr:   "runtime error: index out of range [0] with length 0",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockQuoteRepository{GetQuoteFunc: tt.getQuote}
			uc := usecase.NewQuoteUsecase(repo)

			res := uc.Fetch(context.Background(), tt.symbol)

			assert.Equal(t, tt.wantCalls, repo.GetQuoteCalls)
			if tt.wantErr != "" {
				require.Error(t, res.Err)
				assert.Equal(t, tt.wantErr, res.Err.Error())
				assert.Nil(t, res.Quote)
				assert.False(t, res.OK())
				return
			}
			require.NoError(t, res.Err)
			assert.True(t, res.OK())
			assert.Equal(t, tt.wantQuote, res.Quote)
		})
	}
}

// TestQuoteUsecase_Fetch_PassesSymbolAndContext はシンボルとコンテキストがそのままリポジトリに渡されることを検証します。
func TestQuoteUsecase_Fetch_PassesSymbolAndContext(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	repo := &mockQuoteRepository{
		GetQuoteFunc: func(got context.Context, symbol string) (*entity.Quote, error) {
			assert.Equal(t, "^GSPC", symbol)
			assert.Equal(t, "marker", got.Value(ctxKey{}))
			return &entity.Quote{Symbol: symbol}, nil
		},
	}

	res := usecase.NewQuoteUsecase(repo).Fetch(ctx, "^GSPC")
	require.True(t, res.OK())
	assert.Equal(t, "^GSPC", res.Quote.Symbol)
}

// TestQuoteUsecase_Fetch_SentinelErrors はセンチネルエラーがerrors.Isで判定できることを検証します。
func TestQuoteUsecase_Fetch_SentinelErrors(t *testing.T) {
	t.Parallel()

	repo := &mockQuoteRepository{
		GetQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
			return nil, entity.ErrNoPriceData
		},
	}

	res := usecase.NewQuoteUsecase(repo).Fetch(context.Background(), "XYZ")
	assert.ErrorIs(t, res.Err, entity.ErrNoPriceData)
}
