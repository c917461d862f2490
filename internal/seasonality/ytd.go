package seasonality

import (
	"seasonpulse/internal/domain/models"
)

// YTDTrend computes the cumulative return curve of a year-to-date series:
// the percentage change of every close against the first close, reduced to
// one point per ISO week. When a week holds several sessions the last one
// wins, so each point reflects where the week actually ended. Points keep
// the order in which their weeks first appear in the series.
func YTDTrend(series models.PriceSeries) []models.TrendPoint {
	if len(series) == 0 {
		return nil
	}
	first := series[0].Close
	if first.IsZero() {
		return nil
	}

	order := make([]int, 0, isoWeeks)
	last := make(map[int]float64, isoWeeks)
	for _, p := range series {
		_, week := p.Date.ISOWeek()
		cum := p.Close.Div(first).Sub(one).Mul(hundred).InexactFloat64()
		if _, seen := last[week]; !seen {
			order = append(order, week)
		}
		last[week] = cum
	}

	out := make([]models.TrendPoint, 0, len(order))
	for _, w := range order {
		out = append(out, models.TrendPoint{Week: w, Cumulative: last[w]})
	}
	return out
}
