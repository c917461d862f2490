package seasonality

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"seasonpulse/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func series(points ...models.PricePoint) models.PriceSeries {
	return models.PriceSeries(points)
}

func pt(t time.Time, close float64) models.PricePoint {
	return models.PricePoint{Date: t, Close: decimal.NewFromFloat(close)}
}

func almost(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

func TestDailyReturns_Values(t *testing.T) {
	s := series(
		pt(day(2024, time.January, 2), 100),
		pt(day(2024, time.January, 3), 110),
		pt(day(2024, time.January, 4), 99),
	)

	got := DailyReturns(s)

	if len(got) != len(s)-1 {
		t.Fatalf("expected %d returns, got %d", len(s)-1, len(got))
	}
	want := []float64{10.0, -10.0}
	for i, w := range want {
		if !almost(got[i].Pct, w) {
			t.Errorf("return %d: got %v, want %v", i, got[i].Pct, w)
		}
	}
	if !got[0].Date.Equal(day(2024, time.January, 3)) {
		t.Errorf("return should carry the later session's date, got %v", got[0].Date)
	}
}

func TestDailyReturns_ShortSeries(t *testing.T) {
	if got := DailyReturns(nil); got != nil {
		t.Errorf("expected nil for empty series, got %v", got)
	}
	single := series(pt(day(2024, time.January, 2), 100))
	if got := DailyReturns(single); got != nil {
		t.Errorf("expected nil for single-point series, got %v", got)
	}
}

func TestDailyReturns_SkipsZeroPreviousClose(t *testing.T) {
	s := series(
		pt(day(2024, time.January, 2), 100),
		pt(day(2024, time.January, 3), 0),
		pt(day(2024, time.January, 4), 50),
	)

	got := DailyReturns(s)

	if len(got) != 1 {
		t.Fatalf("expected 1 return, got %d", len(got))
	}
	if !almost(got[0].Pct, -100.0) {
		t.Errorf("got %v, want -100", got[0].Pct)
	}
}
