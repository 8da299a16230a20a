// Package entity defines the domain models for the quote feature.
package entity

// Quote represents the normalized snapshot of a single ticker symbol.
type Quote struct {
	Symbol        string  // Ticker symbol as requested (e.g., "AAPL", "7203.T")
	Name          string  // Display name; falls back to Symbol
	Price         float64 // Current regular-market price
	PreviousClose float64 // Close of the previous session
	Open          float64 // Opening price of the latest sample
	High          float64 // Highest price of the latest sample
	Low           float64 // Lowest price of the latest sample
	Volume        int64   // Trading volume of the latest sample
	Change        float64 // Price - PreviousClose
	ChangePercent float64 // Change relative to PreviousClose, in percent
	Currency      string  // ISO currency code (e.g., "USD")
	Exchange      string  // Exchange name as reported upstream
	MarketState   string  // Trading session phase (e.g., "REGULAR", "PRE", "POST")
	Timestamp     int64   // Regular market time, epoch seconds

	PreMarket  *Session // Set only when upstream reports a pre-market price
	PostMarket *Session // Set only when upstream reports a post-market price
}

// Session holds the price fields of an extended trading session.
type Session struct {
	Price         float64
	Change        float64
	ChangePercent float64
}

// Change returns price - previousClose and the change in percent of previousClose.
// The percentage is 0 when previousClose is 0.
func Change(price, previousClose float64) (change, percent float64) {
	change = price - previousClose
	if previousClose == 0 {
		return change, 0
	}
	return change, change / previousClose * 100
}
