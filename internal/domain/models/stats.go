package models

// MonthlyStat aggregates all day-over-day returns that fall in one calendar
// month (1-12), across every year of the requested window.
//
// Fields:
//   - Month: calendar month number, 1 (January) to 12 (December).
//   - MonthName: English month name; stable regardless of which years
//     contributed observations.
//   - AvgReturn: mean daily return in the month, in percent.
//   - StdDev: sample standard deviation of the returns; omitted when the
//     bucket holds fewer than two observations.
//   - Count: number of return observations in the bucket.
//   - WinRate: percentage of observations with a strictly positive return.
//
// swagger:model MonthlyStat
type MonthlyStat struct {
	Month     int      `json:"month" example:"1"`
	MonthName string   `json:"month_name" example:"January"`
	AvgReturn float64  `json:"avg_return" example:"0.085"`
	StdDev    *float64 `json:"std_dev,omitempty" example:"1.12"`
	Count     int      `json:"count" example:"210"`
	WinRate   float64  `json:"win_rate" example:"54.3"`
}

// QuarterlyStat is the calendar-quarter (1-4) counterpart of MonthlyStat.
//
// swagger:model QuarterlyStat
type QuarterlyStat struct {
	Quarter     int      `json:"quarter" example:"1"`
	QuarterName string   `json:"quarter_name" example:"Q1"`
	AvgReturn   float64  `json:"avg_return" example:"0.062"`
	StdDev      *float64 `json:"std_dev,omitempty" example:"1.08"`
	Count       int      `json:"count" example:"630"`
	WinRate     float64  `json:"win_rate" example:"53.1"`
}

// WeeklyPoint is one row of the weekly comparison table: the historical
// average cumulative return at a given ISO week versus the current year's
// cumulative return at that week, both in percent.
//
// A side missing at a week is forward-filled from the previous week when a
// prior value exists; otherwise it stays absent (nil), never a fabricated
// zero.
//
// swagger:model WeeklyPoint
type WeeklyPoint struct {
	Week   int      `json:"week" example:"7"`
	Avg10y *float64 `json:"avg_10y,omitempty" example:"1.95"`
	YTD    *float64 `json:"ytd,omitempty" example:"2.41"`
}

// TrendPoint is one step of the year-to-date cumulative curve: the cumulative
// return (percent, relative to the first close of the year) as of the last
// trading day of an ISO week.
//
// swagger:model TrendPoint
type TrendPoint struct {
	Week       int     `json:"week" example:"7"`
	Cumulative float64 `json:"cumulative" example:"3.72"`
}

// MonthlyAnalysis bundles the two series the monthly endpoint exposes: the
// per-month averages over the full window and the current year's week-by-week
// cumulative trend. YTD may be empty (e.g. no trading days yet this year)
// without invalidating the monthly stats.
type MonthlyAnalysis struct {
	Stats []MonthlyStat
	YTD   []TrendPoint
}

// TickerInfo describes an instrument as reported by the market-data provider.
//
// swagger:model TickerInfo
type TickerInfo struct {
	Ticker   string `json:"ticker" example:"^GSPC"`
	Name     string `json:"name" example:"S&P 500"`
	Currency string `json:"currency" example:"USD"`
	Exchange string `json:"exchange" example:"SNP"`
	Market   string `json:"market" example:"INDEX"`
}
