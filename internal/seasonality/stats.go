package seasonality

import (
	"fmt"
	"math"
	"time"

	"seasonpulse/internal/domain/models"
)

// bucket accumulates one calendar bucket in a single pass. Count, sum, sum of
// squares and win count are sufficient for the mean, the sample standard
// deviation and the win rate without retaining individual observations.
type bucket struct {
	count int
	sum   float64
	sumSq float64
	wins  int
}

func (b *bucket) add(pct float64) {
	b.count++
	b.sum += pct
	b.sumSq += pct * pct
	if pct > 0 {
		b.wins++
	}
}

func (b *bucket) mean() float64 {
	return b.sum / float64(b.count)
}

// stdDev returns the sample standard deviation (N-1 denominator), or nil when
// fewer than two observations exist and the estimate is undefined.
func (b *bucket) stdDev() *float64 {
	if b.count < 2 {
		return nil
	}
	n := float64(b.count)
	variance := (b.sumSq - b.sum*b.sum/n) / (n - 1)
	if variance < 0 {
		// float cancellation can push a near-zero variance slightly negative
		variance = 0
	}
	s := math.Sqrt(variance)
	return &s
}

func (b *bucket) winRate() float64 {
	return 100 * float64(b.wins) / float64(b.count)
}

// MonthlyStats buckets daily returns by calendar month across all years and
// summarizes each month that has at least one observation. Results are sorted
// January through December; empty months are omitted.
func MonthlyStats(returns []models.DailyReturn) []models.MonthlyStat {
	var buckets [13]bucket
	for _, r := range returns {
		buckets[int(r.Date.Month())].add(r.Pct)
	}
	out := make([]models.MonthlyStat, 0, 12)
	for m := 1; m <= 12; m++ {
		b := &buckets[m]
		if b.count == 0 {
			continue
		}
		out = append(out, models.MonthlyStat{
			Month:     m,
			MonthName: time.Month(m).String(),
			AvgReturn: b.mean(),
			StdDev:    b.stdDev(),
			Count:     b.count,
			WinRate:   b.winRate(),
		})
	}
	return out
}

// QuarterlyStats buckets daily returns by calendar quarter across all years,
// with the same summary per quarter as MonthlyStats produces per month.
// Results are sorted Q1 through Q4; empty quarters are omitted.
func QuarterlyStats(returns []models.DailyReturn) []models.QuarterlyStat {
	var buckets [5]bucket
	for _, r := range returns {
		q := (int(r.Date.Month())-1)/3 + 1
		buckets[q].add(r.Pct)
	}
	out := make([]models.QuarterlyStat, 0, 4)
	for q := 1; q <= 4; q++ {
		b := &buckets[q]
		if b.count == 0 {
			continue
		}
		out = append(out, models.QuarterlyStat{
			Quarter:     q,
			QuarterName: fmt.Sprintf("Q%d", q),
			AvgReturn:   b.mean(),
			StdDev:      b.stdDev(),
			Count:       b.count,
			WinRate:     b.winRate(),
		})
	}
	return out
}
