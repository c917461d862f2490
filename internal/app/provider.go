package app

import (
	"fmt"
	"net/url"
	"time"

	"seasonpulse/config"
	"seasonpulse/internal/marketdata"
)

// InitMarketData constructs the upstream market data client from the provided
// configuration.
//
// Behavior:
//   - Validates the configured base URL before building anything.
//   - Applies the configured per-request timeout to the HTTP client.
//
// Returns:
//   - *marketdata.YahooClient: a ready-to-use provider client.
//   - error: if the base URL is not an absolute URL.
func InitMarketData(cfg config.Config) (*marketdata.YahooClient, error) {
	if _, err := url.ParseRequestURI(cfg.Yahoo.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid market data base url: %w", err)
	}

	timeout := time.Duration(cfg.Yahoo.TimeoutSeconds) * time.Second
	return marketdata.NewYahooClient(cfg.Yahoo.BaseURL, timeout), nil
}

// providerCtor is an indirection used by InitializeApp; overridden in tests.
var providerCtor = InitMarketData
