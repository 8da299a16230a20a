package entity

import "errors"

// Errors returned when the upstream response cannot produce a quote.
// Their messages are part of the output contract and are printed as-is.
var (
	// ErrNoSymbol indicates that no ticker symbol was supplied.
	ErrNoSymbol = errors.New("No symbol provided")

	// ErrNoData indicates that the upstream returned no result for the symbol.
	ErrNoData = errors.New("No data available")

	// ErrNoPriceData indicates that the result carried no closing-price series.
	ErrNoPriceData = errors.New("No price data available")
)
