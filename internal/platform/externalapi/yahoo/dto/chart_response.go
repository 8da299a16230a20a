// Package dto defines the data transfer objects of the Yahoo Finance v8 chart API.
package dto

import "encoding/json"

// ChartResponse is the JSON response of the /v8/finance/chart/{symbol} endpoint.
// Pointer fields distinguish an absent (or null) value from a zero value.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult    `json:"result"`
		Error  json.RawMessage `json:"error"`
	} `json:"chart"`
}

// ChartError is the upstream-reported error object under chart.error.
type ChartError struct {
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// ChartResult is one instrument of chart.result.
type ChartResult struct {
	Meta       Meta    `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []QuoteSeries `json:"quote"`
	} `json:"indicators"`
}

// Meta holds the per-instrument summary fields.
type Meta struct {
	Currency           *string  `json:"currency"`
	Symbol             *string  `json:"symbol"`
	ExchangeName       *string  `json:"exchangeName"`
	LongName           *string  `json:"longName"`
	ShortName          *string  `json:"shortName"`
	MarketState        *string  `json:"marketState"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	RegularMarketTime  *int64   `json:"regularMarketTime"`
	PreviousClose      *float64 `json:"previousClose"`
	ChartPreviousClose *float64 `json:"chartPreviousClose"`

	PreMarketPrice          *float64 `json:"preMarketPrice"`
	PreMarketChange         *float64 `json:"preMarketChange"`
	PreMarketChangePercent  *float64 `json:"preMarketChangePercent"`
	PostMarketPrice         *float64 `json:"postMarketPrice"`
	PostMarketChange        *float64 `json:"postMarketChange"`
	PostMarketChangePercent *float64 `json:"postMarketChangePercent"`
}

// QuoteSeries is the OHLCV series of indicators.quote. Samples may be null.
type QuoteSeries struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}
