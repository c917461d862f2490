package dto

import "seasonpulse/internal/domain/models"

// MonthlyResponse is the JSON structure returned by GET /seasonality/monthly.
//
// Field names match the original API contract: avg_10y holds the per-month
// stats over the requested window (whatever its actual length), ytd_trend the
// current year's weekly cumulative curve (empty list when the year has no
// trading data yet).
//
// swagger:model MonthlyResponse
type MonthlyResponse struct {
	Ticker       string               `json:"ticker" example:"^GSPC"`
	Period       string               `json:"period" example:"10y"`
	AnalysisType string               `json:"analysis_type" example:"monthly"`
	Avg10y       []models.MonthlyStat `json:"avg_10y"`
	YTDTrend     []models.TrendPoint  `json:"ytd_trend"`
}

// QuarterlyResponse is the JSON structure returned by GET /seasonality/quarterly.
//
// swagger:model QuarterlyResponse
type QuarterlyResponse struct {
	Ticker       string                 `json:"ticker" example:"^GSPC"`
	Period       string                 `json:"period" example:"10y"`
	AnalysisType string                 `json:"analysis_type" example:"quarterly"`
	Data         []models.QuarterlyStat `json:"data"`
}

// WeeklyResponse is the JSON structure returned by GET /seasonality/weekly.
//
// swagger:model WeeklyResponse
type WeeklyResponse struct {
	Ticker       string               `json:"ticker" example:"^GSPC"`
	Period       string               `json:"period" example:"10y"`
	AnalysisType string               `json:"analysis_type" example:"weekly"`
	Data         []models.WeeklyPoint `json:"data"`
}

// CompareResponse is the JSON structure returned by GET /seasonality/compare.
//
// Tickers echoes every requested ticker; Comparison only contains entries for
// tickers whose monthly stats could be computed. A ticker that failed upstream
// or had no data is simply absent.
//
// swagger:model CompareResponse
type CompareResponse struct {
	Tickers    []string                        `json:"tickers"`
	Period     string                          `json:"period" example:"10y"`
	Comparison map[string][]models.MonthlyStat `json:"comparison"`
}

// DiscoveryResponse is the JSON structure returned by GET /.
//
// swagger:model DiscoveryResponse
type DiscoveryResponse struct {
	Message   string            `json:"message" example:"Seasonality API"`
	Endpoints map[string]string `json:"endpoints"`
	Example   string            `json:"example" example:"/seasonality/weekly?ticker=^GSPC&period=10y"`
}
