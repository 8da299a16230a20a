// Package di provides dependency injection factories for creating application components.
package di

import (
	"quote_bridge/internal/feature/quote/usecase"
	"quote_bridge/internal/platform/externalapi/yahoo"
	infrahttp "quote_bridge/internal/platform/http"
)

// NewQuoteRepository creates a fully configured Yahoo ChartRepository with a browser-fingerprinted HTTP client.
func NewQuoteRepository(cfg yahoo.Config) *yahoo.ChartRepository {
	httpClient := infrahttp.NewBrowserClient(cfg.Timeout, cfg.UserAgent)
	return yahoo.NewChartRepository(cfg, httpClient)
}

// NewQuoteUsecase wires the quote usecase to the Yahoo repository.
func NewQuoteUsecase(cfg yahoo.Config) *usecase.QuoteUsecase {
	return usecase.NewQuoteUsecase(NewQuoteRepository(cfg))
}
