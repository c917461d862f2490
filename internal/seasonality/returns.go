// Package seasonality is the pure aggregation core: it derives day-over-day
// returns from a price series and buckets them by calendar position (month,
// quarter, ISO week) into summary statistics. Everything here is stateless
// and side-effect free; fetching and HTTP shaping live elsewhere.
package seasonality

import (
	"github.com/shopspring/decimal"

	"seasonpulse/internal/domain/models"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// DailyReturns derives the percentage return series of a price history:
// ret[i] = (close[i]/close[i-1] - 1) * 100, aligned to the later date.
//
// A series of length N yields N-1 returns (none for N <= 1); the first
// observation never contributes. An observation following a zero close is
// skipped, since no meaningful return exists across it.
func DailyReturns(series models.PriceSeries) []models.DailyReturn {
	if len(series) < 2 {
		return nil
	}
	out := make([]models.DailyReturn, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Close
		if prev.IsZero() {
			continue
		}
		pct := series[i].Close.Div(prev).Sub(one).Mul(hundred)
		out = append(out, models.DailyReturn{Date: series[i].Date, Pct: pct.InexactFloat64()})
	}
	return out
}
