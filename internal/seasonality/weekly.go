package seasonality

import (
	"sort"

	"seasonpulse/internal/domain/models"
)

// isoWeeks is the upper bound of ISO week numbers within a year.
const isoWeeks = 53

type yearWeek struct {
	year int
	week int
}

// WeeklyCumulative builds the week-by-week comparison of the historical
// average cumulative return curve against the current year's curve.
//
// Daily returns are summed per (ISO year, ISO week), the weekly sums are
// compounded within each year into a cumulative curve, and the curves are
// averaged across years per week number. The current year's own curve is
// extracted separately so callers can plot "this year so far" against the
// long-run shape. Both columns are percentages.
func WeeklyCumulative(returns []models.DailyReturn, currentYear int) []models.WeeklyPoint {
	sums := weeklySums(returns)
	if len(sums) == 0 {
		return nil
	}
	curves := cumulativeByWeek(sums)

	avgSum := make(map[int]float64, isoWeeks)
	avgN := make(map[int]int, isoWeeks)
	ytd := make(map[int]float64, isoWeeks)
	for k, v := range curves {
		avgSum[k.week] += v
		avgN[k.week]++
		if k.year == currentYear {
			ytd[k.week] = v
		}
	}
	avg := make(map[int]float64, len(avgSum))
	for w, s := range avgSum {
		avg[w] = s / float64(avgN[w])
	}
	return MergeForwardFill(avg, ytd)
}

// weeklySums groups daily returns by ISO year and week, summing the
// fractional returns of each group. ISO attribution matters at year
// boundaries: late-December sessions can belong to week 1 of the next
// ISO year and are grouped there.
func weeklySums(returns []models.DailyReturn) map[yearWeek]float64 {
	sums := make(map[yearWeek]float64)
	for _, r := range returns {
		y, w := r.Date.ISOWeek()
		sums[yearWeek{year: y, week: w}] += r.Pct / 100
	}
	return sums
}

// cumulativeByWeek compounds weekly return sums into a cumulative curve per
// ISO year: walking the weeks of a year in order, cum_k = prod(1+sum_i) - 1.
// The product restarts at every year so each curve measures growth from that
// year's first traded week.
func cumulativeByWeek(sums map[yearWeek]float64) map[yearWeek]float64 {
	keys := make([]yearWeek, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	out := make(map[yearWeek]float64, len(keys))
	year := 0
	running := 1.0
	for _, k := range keys {
		if k.year != year {
			year = k.year
			running = 1.0
		}
		running *= 1 + sums[k]
		out[k] = running - 1
	}
	return out
}

// MergeForwardFill outer-joins two per-week fractional curves into one table
// sorted by week number, carrying the last seen value of each column across
// weeks where that column has no observation of its own. A column stays
// absent until its first observation. Week numbers outside 1..53 are
// discarded. Values are scaled to percentages on the way out.
func MergeForwardFill(avg, ytd map[int]float64) []models.WeeklyPoint {
	weekSet := make(map[int]struct{}, len(avg)+len(ytd))
	for w := range avg {
		weekSet[w] = struct{}{}
	}
	for w := range ytd {
		weekSet[w] = struct{}{}
	}
	weeks := make([]int, 0, len(weekSet))
	for w := range weekSet {
		if w >= 1 && w <= isoWeeks {
			weeks = append(weeks, w)
		}
	}
	sort.Ints(weeks)

	out := make([]models.WeeklyPoint, 0, len(weeks))
	var lastAvg, lastYTD *float64
	for _, w := range weeks {
		if v, ok := avg[w]; ok {
			scaled := v * 100
			lastAvg = &scaled
		}
		if v, ok := ytd[w]; ok {
			scaled := v * 100
			lastYTD = &scaled
		}
		p := models.WeeklyPoint{Week: w}
		if lastAvg != nil {
			v := *lastAvg
			p.Avg10y = &v
		}
		if lastYTD != nil {
			v := *lastYTD
			p.YTD = &v
		}
		out = append(out, p)
	}
	return out
}
