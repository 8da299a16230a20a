// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import (
	"log/slog"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the host serving the v8 chart endpoint.
	DefaultBaseURL = "https://query2.finance.yahoo.com"
	// DefaultTimeout bounds the whole request, connection through body.
	DefaultTimeout = 10 * time.Second
	// Lookback is the width of the requested period1..period2 window.
	Lookback = 2 * 24 * time.Hour
)

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "https://query2.finance.yahoo.com")
	Timeout   time.Duration // HTTP request timeout
	UserAgent string        // User agent presented upstream; empty selects the client default
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   os.Getenv("YAHOO_BASE_URL"),
		Timeout:   DefaultTimeout,
		UserAgent: os.Getenv("YAHOO_USER_AGENT"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if v := os.Getenv("YAHOO_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("invalid YAHOO_TIMEOUT, using default", "value", v, "default", DefaultTimeout)
		} else {
			cfg.Timeout = d
		}
	}
	return cfg
}
