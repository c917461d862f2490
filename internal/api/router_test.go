package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"seasonpulse/internal/domain/dto"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Provide a service that returns a valid analysis so the handler answers 200
	svc := &mockSeasonalityService{monthly: monthlyFixture()}
	h := NewHandler(svc)
	r := NewRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/seasonality/monthly?ticker=AAPL&period=5y", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// RequestID middleware injected its header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	// CORS middleware answered the browser origin
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("expected Access-Control-Allow-Origin header to be set")
	}

	var out dto.MonthlyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Ticker != "AAPL" || out.AnalysisType != "monthly" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_AllRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(NewHandler(&mockSeasonalityService{monthly: monthlyFixture()}))

	paths := []string{
		"/",
		"/seasonality/monthly",
		"/seasonality/quarterly",
		"/seasonality/weekly",
		"/seasonality/compare",
		"/info/AAPL",
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		if w.Code == http.StatusNotFound {
			t.Errorf("route %s not registered", p)
		}
	}

	// swagger UI mounted
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code == http.StatusNotFound {
		t.Errorf("swagger route not registered")
	}
}
