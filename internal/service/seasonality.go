package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"seasonpulse/internal/domain/models"
	"seasonpulse/internal/logger"
	"seasonpulse/internal/marketdata"
	"seasonpulse/internal/seasonality"
)

// ErrNoData reports that a ticker produced no usable price history for the
// requested window. Handlers translate it into a 404.
var ErrNoData = errors.New("no historical data")

// compareParallel bounds concurrent upstream fetches during a comparison.
const compareParallel = 4

// timeNow is an indirection for the clock; tests can override this.
var timeNow = time.Now

// SeasonalityService defines the business logic for seasonal return analysis.
type SeasonalityService interface {
	// Monthly returns the per-month return summary over the period, together
	// with the current year's week-by-week cumulative trend.
	Monthly(ctx context.Context, ticker, period string) (*models.MonthlyAnalysis, error)

	// Quarterly returns the per-quarter return summary over the period.
	Quarterly(ctx context.Context, ticker, period string) ([]models.QuarterlyStat, error)

	// Weekly returns the historical average weekly cumulative curve merged
	// with the current year's curve.
	Weekly(ctx context.Context, ticker, period string) ([]models.WeeklyPoint, error)

	// Compare computes monthly summaries for several tickers at once.
	// Tickers that fail or have no history are left out of the result.
	Compare(ctx context.Context, tickers []string, period string) (map[string][]models.MonthlyStat, error)

	// Info returns descriptive metadata for a ticker.
	Info(ctx context.Context, ticker string) (*models.TickerInfo, error)
}

type seasonalityService struct {
	provider marketdata.Provider
}

func NewSeasonalityService(provider marketdata.Provider) SeasonalityService {
	return &seasonalityService{provider: provider}
}

func (s *seasonalityService) Monthly(ctx context.Context, ticker, period string) (*models.MonthlyAnalysis, error) {
	series, err := s.provider.History(ctx, ticker, period)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}
	stats := seasonality.MonthlyStats(seasonality.DailyReturns(series))
	return &models.MonthlyAnalysis{
		Stats: stats,
		YTD:   s.ytdTrend(ctx, ticker),
	}, nil
}

// ytdTrend fetches the current calendar year and reduces it to a weekly
// cumulative curve. The trend is a companion to the monthly table, so any
// failure degrades to an empty list instead of failing the request.
func (s *seasonalityService) ytdTrend(ctx context.Context, ticker string) []models.TrendPoint {
	now := timeNow().UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	series, err := s.provider.HistoryRange(ctx, ticker, start, now)
	if err != nil {
		logger.L().Warn().Str("ticker", ticker).Err(err).Msg("ytd trend unavailable")
		return []models.TrendPoint{}
	}
	trend := seasonality.YTDTrend(series)
	if trend == nil {
		trend = []models.TrendPoint{}
	}
	return trend
}

func (s *seasonalityService) Quarterly(ctx context.Context, ticker, period string) ([]models.QuarterlyStat, error) {
	series, err := s.provider.History(ctx, ticker, period)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}
	return seasonality.QuarterlyStats(seasonality.DailyReturns(series)), nil
}

func (s *seasonalityService) Weekly(ctx context.Context, ticker, period string) ([]models.WeeklyPoint, error) {
	series, err := s.provider.History(ctx, ticker, period)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, ErrNoData
	}
	points := seasonality.WeeklyCumulative(seasonality.DailyReturns(series), timeNow().UTC().Year())
	if points == nil {
		points = []models.WeeklyPoint{}
	}
	return points, nil
}

func (s *seasonalityService) Compare(ctx context.Context, tickers []string, period string) (map[string][]models.MonthlyStat, error) {
	comparison := make(map[string][]models.MonthlyStat, len(tickers))

	// Fetches are independent; a failed or empty ticker is dropped from the
	// comparison rather than failing the whole request.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, compareParallel)
	var mu sync.Mutex

	for _, ticker := range tickers {
		ticker = strings.TrimSpace(ticker)
		if ticker == "" {
			continue
		}
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			series, err := s.provider.History(gctx, ticker, period)
			if err != nil {
				logger.L().Warn().Str("ticker", ticker).Err(err).Msg("comparison ticker skipped")
				return nil
			}
			stats := seasonality.MonthlyStats(seasonality.DailyReturns(series))
			if len(stats) == 0 {
				logger.L().Debug().Str("ticker", ticker).Msg("comparison ticker has no usable history")
				return nil
			}
			mu.Lock()
			comparison[ticker] = stats
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return comparison, nil
}

func (s *seasonalityService) Info(ctx context.Context, ticker string) (*models.TickerInfo, error) {
	info, err := s.provider.Info(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrNoData
	}
	return info, nil
}
