package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one daily observation of a ticker: the calendar date of the
// trading session and its (adjusted) closing price.
//
// Close is kept as a decimal so price arithmetic (ratios between closes) does
// not accumulate binary-float noise; derived statistics are plain float64.
type PricePoint struct {
	Date  time.Time
	Close decimal.Decimal
}

// PriceSeries is the ordered daily price history of one ticker over one
// requested window.
//
// Invariants:
//   - Ascending by date, no duplicate dates.
//   - May be empty: an unknown ticker or a window with no trading data yields
//     an empty series, which is a valid result and not an error.
type PriceSeries []PricePoint

// DailyReturn is one day-over-day percentage return, aligned to the date of
// the later close. A series of N prices derives N-1 returns; the first
// observation has no return.
type DailyReturn struct {
	Date time.Time
	Pct  float64 // (close[i]/close[i-1] - 1) * 100
}
