package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"seasonpulse/internal/domain/models"
	"seasonpulse/internal/logger"
)

// DefaultBaseURL is the public Yahoo Finance chart API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// YahooClient implements Provider against the Yahoo Finance v8 chart API.
//
// One endpoint serves everything: GET {base}/v8/finance/chart/{symbol} returns
// the price candles for a range plus a meta block describing the instrument,
// so History, HistoryRange and Info are all shaped from the same response.
type YahooClient struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewYahooClient builds a client for the given base URL (DefaultBaseURL in
// production, an httptest server in tests) with a per-call timeout.
func NewYahooClient(baseURL string, timeout time.Duration) *YahooClient {
	return &YahooClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     logger.With("marketdata"),
	}
}

// chartResponse mirrors the Yahoo chart API payload. Close values arrive as
// JSON nulls on holidays/half sessions, hence the pointer slices.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Currency             string `json:"currency"`
		Symbol               string `json:"symbol"`
		ExchangeName         string `json:"exchangeName"`
		FullExchangeName     string `json:"fullExchangeName"`
		InstrumentType       string `json:"instrumentType"`
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
		ShortName            string `json:"shortName"`
		LongName             string `json:"longName"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
		Adjclose []struct {
			Adjclose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// History implements Provider. The period token is forwarded verbatim as the
// chart range parameter.
func (c *YahooClient) History(ctx context.Context, ticker, period string) (models.PriceSeries, error) {
	q := url.Values{}
	q.Set("range", period)
	q.Set("interval", "1d")
	q.Set("includeAdjustedClose", "true")

	res, err := c.fetchChart(ctx, ticker, q)
	if err != nil {
		return nil, err
	}
	series := seriesFromChart(res)
	c.log.Debug().Str("ticker", ticker).Str("range", period).Int("rows", len(series)).Msg("history fetched")
	return series, nil
}

// HistoryRange implements Provider using epoch-second period1/period2 params.
func (c *YahooClient) HistoryRange(ctx context.Context, ticker string, start, end time.Time) (models.PriceSeries, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("interval", "1d")
	q.Set("includeAdjustedClose", "true")

	res, err := c.fetchChart(ctx, ticker, q)
	if err != nil {
		return nil, err
	}
	series := seriesFromChart(res)
	c.log.Debug().Str("ticker", ticker).Time("start", start).Time("end", end).Int("rows", len(series)).Msg("history range fetched")
	return series, nil
}

// Info implements Provider from the chart meta block of a 1-day fetch.
// Returns nil (not an error) when the ticker is unknown.
func (c *YahooClient) Info(ctx context.Context, ticker string) (*models.TickerInfo, error) {
	q := url.Values{}
	q.Set("range", "1d")
	q.Set("interval", "1d")

	res, err := c.fetchChart(ctx, ticker, q)
	if err != nil {
		return nil, err
	}
	if res == nil || res.Meta.Symbol == "" {
		return nil, nil
	}

	name := res.Meta.LongName
	if name == "" {
		name = res.Meta.ShortName
	}
	if name == "" {
		name = res.Meta.Symbol
	}
	exchange := res.Meta.FullExchangeName
	if exchange == "" {
		exchange = res.Meta.ExchangeName
	}

	return &models.TickerInfo{
		Ticker:   res.Meta.Symbol,
		Name:     name,
		Currency: res.Meta.Currency,
		Exchange: exchange,
		// The chart meta has no dedicated market field; the instrument type
		// (EQUITY, INDEX, ETF, ...) is the closest classification it carries.
		Market: res.Meta.InstrumentType,
	}, nil
}

// Ping implements Provider. Reachability only: any HTTP response from the
// host counts, so routine probes never cost a data request.
func (c *YahooClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// Close releases pooled connections. Safe to call more than once.
func (c *YahooClient) Close() {
	c.client.CloseIdleConnections()
}

// fetchChart performs one chart API call. A nil result with nil error means
// the provider answered "no such data"; callers turn that into an empty
// series or absent info.
func (c *YahooClient) fetchChart(ctx context.Context, ticker string, q url.Values) (*chartResult, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects requests without a browser-ish agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, upstreamErr(ticker, "fetch failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstreamErr(ticker, "read body failed", err)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, upstreamErr(ticker, fmt.Sprintf("status %d", resp.StatusCode), nil)
		}
		return nil, upstreamErr(ticker, "decode failed", err)
	}

	if chart.Chart.Error != nil {
		// "Not Found" is Yahoo's unknown-ticker answer; that is the expected
		// no-data condition, not a failure.
		if chart.Chart.Error.Code == "Not Found" {
			c.log.Debug().Str("ticker", ticker).Msg("unknown ticker")
			return nil, nil
		}
		return nil, upstreamErr(ticker, chart.Chart.Error.Description, nil)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, upstreamErr(ticker, fmt.Sprintf("status %d", resp.StatusCode), nil)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, nil
	}
	return &chart.Chart.Result[0], nil
}

// seriesFromChart flattens a chart result into an ascending PriceSeries.
// Timestamps are session instants in the exchange's timezone; each is reduced
// to its local calendar date. Null closes (holidays, half sessions) are skipped,
// and a repeated date keeps the latest value.
func seriesFromChart(res *chartResult) models.PriceSeries {
	if res == nil || len(res.Timestamp) == 0 || len(res.Indicators.Quote) == 0 {
		return nil
	}

	loc := time.UTC
	if res.Meta.ExchangeTimezoneName != "" {
		if l, err := time.LoadLocation(res.Meta.ExchangeTimezoneName); err == nil {
			loc = l
		}
	}

	closes := res.Indicators.Quote[0].Close
	var adj []*float64
	if len(res.Indicators.Adjclose) > 0 {
		adj = res.Indicators.Adjclose[0].Adjclose
	}

	series := make(models.PriceSeries, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(closes) {
			break
		}
		v := closes[i]
		if adj != nil && i < len(adj) && adj[i] != nil {
			v = adj[i]
		}
		if v == nil {
			continue
		}

		t := time.Unix(ts, 0).In(loc)
		y, m, d := t.Date()
		date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

		if n := len(series); n > 0 && series[n-1].Date.Equal(date) {
			series[n-1].Close = decimal.NewFromFloat(*v)
			continue
		}
		series = append(series, models.PricePoint{Date: date, Close: decimal.NewFromFloat(*v)})
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}
