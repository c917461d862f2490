package marketdata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// chartBody builds a minimal chart API payload. closes entries may be "null".
func chartBody(tz string, timestamps []int64, closes []string) string {
	ts := ""
	for i, t := range timestamps {
		if i > 0 {
			ts += ","
		}
		ts += fmt.Sprintf("%d", t)
	}
	cs := ""
	for i, c := range closes {
		if i > 0 {
			cs += ","
		}
		cs += c
	}
	return fmt.Sprintf(`{"chart":{"result":[{
		"meta":{"currency":"USD","symbol":"^GSPC","exchangeName":"SNP","fullExchangeName":"SNP","instrumentType":"INDEX","exchangeTimezoneName":"%s","shortName":"S&P 500"},
		"timestamp":[%s],
		"indicators":{"quote":[{"close":[%s]}]}
	}],"error":null}}`, tz, ts, cs)
}

func newStub(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *YahooClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewYahooClient(srv.URL, 2*time.Second)
}

func TestHistory_ParsesSeries(t *testing.T) {
	// Sessions on Jan 2-4 2024, 14:30 UTC; Jan 3 close is null (holiday gap).
	body := chartBody("UTC",
		[]int64{1704205800, 1704292200, 1704378600},
		[]string{"100.5", "null", "102.25"},
	)
	_, c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("range") != "10y" {
			t.Errorf("range param not forwarded: %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(body))
	})

	series, err := c.History(context.Background(), "^GSPC", "10y")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("want 2 points (null skipped), got %d", len(series))
	}
	if !series[0].Close.Equal(decimal.NewFromFloat(100.5)) {
		t.Fatalf("close[0]=%s", series[0].Close)
	}
	if got := series[0].Date; got.Year() != 2024 || got.Month() != time.January || got.Day() != 2 {
		t.Fatalf("date[0]=%v", got)
	}
	if !series[0].Date.Before(series[1].Date) {
		t.Fatalf("series not ascending: %v then %v", series[0].Date, series[1].Date)
	}
}

func TestHistory_PrefersAdjustedClose(t *testing.T) {
	body := `{"chart":{"result":[{
		"meta":{"symbol":"AAPL","exchangeTimezoneName":"UTC"},
		"timestamp":[1704205800],
		"indicators":{"quote":[{"close":[200.0]}],"adjclose":[{"adjclose":[199.0]}]}
	}],"error":null}}`
	_, c := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	series, err := c.History(context.Background(), "AAPL", "1y")
	if err != nil || len(series) != 1 {
		t.Fatalf("series=%v err=%v", series, err)
	}
	if !series[0].Close.Equal(decimal.NewFromFloat(199.0)) {
		t.Fatalf("adjclose not preferred: %s", series[0].Close)
	}
}

func TestHistory_UnknownTicker_EmptyNotError(t *testing.T) {
	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`
	_, c := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(body))
	})

	series, err := c.History(context.Background(), "NOPE", "10y")
	if err != nil {
		t.Fatalf("unknown ticker must not error, got %v", err)
	}
	if len(series) != 0 {
		t.Fatalf("want empty series, got %d points", len(series))
	}
}

func TestHistory_UpstreamFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "api error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Bad Request","description":"Invalid range"}}}`))
			},
		},
		{
			name: "http 500 plain body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("upstream exploded"))
			},
		},
		{
			name: "garbage json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"chart": not-json`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c := newStub(t, tc.handler)
			_, err := c.History(context.Background(), "^GSPC", "10y")
			var ue *UpstreamError
			if !errors.As(err, &ue) {
				t.Fatalf("want *UpstreamError, got %v", err)
			}
			if ue.Ticker != "^GSPC" {
				t.Fatalf("ticker not attached: %+v", ue)
			}
		})
	}
}

func TestHistoryRange_SendsEpochParams(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	var gotP1, gotP2 string
	_, c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		gotP1 = r.URL.Query().Get("period1")
		gotP2 = r.URL.Query().Get("period2")
		_, _ = w.Write([]byte(chartBody("UTC", []int64{1735816200}, []string{"50"})))
	})

	if _, err := c.HistoryRange(context.Background(), "^GSPC", start, end); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotP1 != fmt.Sprintf("%d", start.Unix()) || gotP2 != fmt.Sprintf("%d", end.Unix()) {
		t.Fatalf("epoch params wrong: period1=%s period2=%s", gotP1, gotP2)
	}
}

func TestInfo_MapsMeta(t *testing.T) {
	body := `{"chart":{"result":[{
		"meta":{"currency":"USD","symbol":"^GSPC","exchangeName":"SNP","fullExchangeName":"SNP","instrumentType":"INDEX","exchangeTimezoneName":"America/New_York","shortName":"S&P 500"},
		"timestamp":[1704205800],
		"indicators":{"quote":[{"close":[4700.0]}]}
	}],"error":null}}`
	_, c := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	info, err := c.Info(context.Background(), "^GSPC")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if info == nil {
		t.Fatalf("want info, got nil")
	}
	if info.Ticker != "^GSPC" || info.Name != "S&P 500" || info.Currency != "USD" || info.Exchange != "SNP" || info.Market != "INDEX" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestInfo_UnknownTicker_Nil(t *testing.T) {
	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`
	_, c := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(body))
	})

	info, err := c.Info(context.Background(), "NOPE")
	if err != nil || info != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", info, err)
	}
}

func TestSeriesFromChart_ExchangeTimezone(t *testing.T) {
	// 2024-01-10 00:30 UTC is still 2024-01-09 in New York.
	body := chartBody("America/New_York", []int64{1704846600}, []string{"4700"})
	_, c := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	series, err := c.History(context.Background(), "^GSPC", "5d")
	if err != nil || len(series) != 1 {
		t.Fatalf("series=%v err=%v", series, err)
	}
	d := series[0].Date
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 9 {
		t.Fatalf("date not shifted to exchange tz: %v", d)
	}
}

func TestPing(t *testing.T) {
	srv, c := newStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound) // any response counts as reachable
	})
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping against live stub: %v", err)
	}

	srv.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Fatalf("ping against closed server should fail")
	}
}
