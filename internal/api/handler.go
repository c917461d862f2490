package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"seasonpulse/internal/domain/dto"
	"seasonpulse/internal/marketdata"
	"seasonpulse/internal/middleware"
	"seasonpulse/internal/service"
)

// Defaults applied when the caller leaves query parameters out, mirroring the
// most common way the API is used: US index seasonality over a decade.
const (
	defaultTicker         = "^GSPC"
	defaultPeriod         = "10y"
	defaultCompareTickers = "^GSPC,^DJI,^IXIC"
)

// Handler provides HTTP handlers for the seasonality endpoints.
//
// Responsibilities:
//   - Read and default incoming query parameters
//   - Delegate to the seasonality service
//   - Translate service results and failures into response DTOs
//     with appropriate HTTP status codes
type Handler struct {
	svc service.SeasonalityService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.SeasonalityService): Business logic dependency.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.SeasonalityService) *Handler {
	return &Handler{svc: svc}
}

// Home handles GET / requests.
//
// Home godoc
// @Summary      API discovery
// @Description  Lists the available endpoints with a usage example
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.DiscoveryResponse  "Success"
// @Router       / [get]
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DiscoveryResponse{
		Message: "Seasonality API",
		Endpoints: map[string]string{
			"/seasonality/monthly":   "Monthly average trends",
			"/seasonality/quarterly": "Quarterly average trends",
			"/seasonality/weekly":    "Weekly cumulative trends",
			"/seasonality/compare":   "Compare multiple indices",
			"/info/{ticker}":         "Ticker metadata",
			"/healthz":               "Liveness probe",
			"/readyz":                "Readiness probe",
			"/swagger/index.html":    "OpenAPI documentation",
		},
		Example: "/seasonality/weekly?ticker=^GSPC&period=10y",
	})
}

// GetMonthly handles GET /seasonality/monthly requests.
//
// Query Parameters:
//   - ticker (string, optional): Symbol to analyze (default "^GSPC").
//   - period (string, optional): Lookback window such as "5y" or "10y" (default "10y").
//
// Responses:
//   - 200 OK: Monthly return statistics plus the current year's weekly trend.
//   - 404 Not Found: No historical data for the ticker.
//   - 400 Bad Request: The upstream data provider failed.
//
// GetMonthly godoc
// @Summary      Monthly seasonality
// @Description  Average return, volatility and win rate per calendar month over the period
// @Tags         seasonality
// @Produce      json
// @Param        ticker  query     string  false  "Ticker symbol"    example(^GSPC)
// @Param        period  query     string  false  "Lookback period"  example(10y)
// @Success      200     {object}  dto.MonthlyResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Upstream Failure"
// @Failure      404     {object}  dto.ErrorResponse    "Not Found"
// @Router       /seasonality/monthly [get]
func (h *Handler) GetMonthly(c *gin.Context) {
	ticker := tickerParam(c)
	period := periodParam(c)

	analysis, err := h.svc.Monthly(c.Request.Context(), ticker, period)
	if err != nil {
		respondError(c, err, "No historical data found")
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyResponse{
		Ticker:       ticker,
		Period:       period,
		AnalysisType: "monthly",
		Avg10y:       analysis.Stats,
		YTDTrend:     analysis.YTD,
	})
}

// GetQuarterly handles GET /seasonality/quarterly requests.
//
// GetQuarterly godoc
// @Summary      Quarterly seasonality
// @Description  Average return, volatility and win rate per calendar quarter over the period
// @Tags         seasonality
// @Produce      json
// @Param        ticker  query     string  false  "Ticker symbol"    example(^GSPC)
// @Param        period  query     string  false  "Lookback period"  example(10y)
// @Success      200     {object}  dto.QuarterlyResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Upstream Failure"
// @Failure      404     {object}  dto.ErrorResponse      "Not Found"
// @Router       /seasonality/quarterly [get]
func (h *Handler) GetQuarterly(c *gin.Context) {
	ticker := tickerParam(c)
	period := periodParam(c)

	stats, err := h.svc.Quarterly(c.Request.Context(), ticker, period)
	if err != nil {
		respondError(c, err, "No data found for ticker")
		return
	}

	c.JSON(http.StatusOK, dto.QuarterlyResponse{
		Ticker:       ticker,
		Period:       period,
		AnalysisType: "quarterly",
		Data:         stats,
	})
}

// GetWeekly handles GET /seasonality/weekly requests.
//
// GetWeekly godoc
// @Summary      Weekly seasonality
// @Description  Historical average weekly cumulative curve merged with the current year's curve
// @Tags         seasonality
// @Produce      json
// @Param        ticker  query     string  false  "Ticker symbol"    example(^GSPC)
// @Param        period  query     string  false  "Lookback period"  example(10y)
// @Success      200     {object}  dto.WeeklyResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse   "Upstream Failure"
// @Failure      404     {object}  dto.ErrorResponse   "Not Found"
// @Router       /seasonality/weekly [get]
func (h *Handler) GetWeekly(c *gin.Context) {
	ticker := tickerParam(c)
	period := periodParam(c)

	points, err := h.svc.Weekly(c.Request.Context(), ticker, period)
	if err != nil {
		respondError(c, err, "No data found")
		return
	}

	c.JSON(http.StatusOK, dto.WeeklyResponse{
		Ticker:       ticker,
		Period:       period,
		AnalysisType: "weekly",
		Data:         points,
	})
}

// GetCompare handles GET /seasonality/compare requests.
//
// The comparison is best-effort: tickers that fail or have no history are
// simply left out of the result, and the endpoint still answers 200.
//
// GetCompare godoc
// @Summary      Compare tickers
// @Description  Monthly seasonality of several tickers side by side; failing tickers are omitted
// @Tags         seasonality
// @Produce      json
// @Param        tickers  query     string  false  "Comma-separated ticker symbols"  example(^GSPC,^DJI,^IXIC)
// @Param        period   query     string  false  "Lookback period"                 example(10y)
// @Success      200      {object}  dto.CompareResponse  "Success"
// @Router       /seasonality/compare [get]
func (h *Handler) GetCompare(c *gin.Context) {
	raw := c.DefaultQuery("tickers", defaultCompareTickers)
	period := periodParam(c)

	tickers := splitTickers(raw)

	comparison, err := h.svc.Compare(c.Request.Context(), tickers, period)
	if err != nil {
		respondError(c, err, "No data found")
		return
	}

	c.JSON(http.StatusOK, dto.CompareResponse{
		Tickers:    tickers,
		Period:     period,
		Comparison: comparison,
	})
}

// GetInfo handles GET /info/{ticker} requests.
//
// GetInfo godoc
// @Summary      Ticker metadata
// @Description  Name, currency, exchange and market classification of a ticker
// @Tags         info
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol"  example(AAPL)
// @Success      200     {object}  models.TickerInfo  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Upstream Failure"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Router       /info/{ticker} [get]
func (h *Handler) GetInfo(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "ticker is required", nil)
		return
	}

	info, err := h.svc.Info(c.Request.Context(), ticker)
	if err != nil {
		respondError(c, err, "No ticker information found")
		return
	}

	c.JSON(http.StatusOK, info)
}

// ─── Parameter helpers ────────────────────────────────────

func tickerParam(c *gin.Context) string {
	t := strings.TrimSpace(c.DefaultQuery("ticker", defaultTicker))
	if t == "" {
		return defaultTicker
	}
	return t
}

func periodParam(c *gin.Context) string {
	p := strings.TrimSpace(c.DefaultQuery("period", defaultPeriod))
	if p == "" {
		return defaultPeriod
	}
	return p
}

func splitTickers(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// respondError translates service failures into the API error contract:
// missing data is a 404 with an endpoint-specific message, upstream provider
// failures surface as 400 with the provider's message, anything else is a 500.
func respondError(c *gin.Context, err error, noDataMessage string) {
	if errors.Is(err, service.ErrNoData) {
		middleware.AbortWithError(c, http.StatusNotFound, noDataMessage, nil)
		return
	}
	var ue *marketdata.UpstreamError
	if errors.As(err, &ue) {
		middleware.AbortWithError(c, http.StatusBadRequest, ue.Message, ue.Unwrap())
		return
	}
	middleware.AbortWithError(c, http.StatusInternalServerError, "Internal server error", err)
}
