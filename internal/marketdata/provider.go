package marketdata

import (
	"context"
	"fmt"
	"time"

	"seasonpulse/internal/domain/models"
)

// Provider is the market-data collaborator contract.
//
// History and HistoryRange return the daily price series for a ticker; an
// empty series means "no data for this ticker/window" and is NOT an error
// (unknown tickers resolve to empty series). Errors are reserved for upstream
// failures and are always of type *UpstreamError.
type Provider interface {
	// History fetches the trailing window named by period, an opaque range
	// token forwarded to the provider (e.g. "10y", "1y", "ytd", "max").
	History(ctx context.Context, ticker, period string) (models.PriceSeries, error)

	// HistoryRange fetches the series between two dates (inclusive start,
	// exclusive end, per the provider's own convention).
	HistoryRange(ctx context.Context, ticker string, start, end time.Time) (models.PriceSeries, error)

	// Info returns instrument metadata, or nil when the ticker is unknown.
	Info(ctx context.Context, ticker string) (*models.TickerInfo, error)

	// Ping reports whether the provider endpoint is reachable. Used by the
	// readiness probe.
	Ping(ctx context.Context) error
}

// UpstreamError is a failure reported by (or while talking to) the market-data
// provider: network errors, unexpected statuses, malformed payloads, provider
// API errors. Expected no-data conditions are not UpstreamErrors.
type UpstreamError struct {
	Ticker  string
	Message string
	cause   error
}

func (e *UpstreamError) Error() string {
	if e.Ticker == "" {
		return fmt.Sprintf("upstream: %s", e.Message)
	}
	return fmt.Sprintf("upstream %s: %s", e.Ticker, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.cause }

// upstreamErr builds an *UpstreamError; cause may be nil.
func upstreamErr(ticker, message string, cause error) *UpstreamError {
	return &UpstreamError{Ticker: ticker, Message: message, cause: cause}
}
