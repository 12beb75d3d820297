package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradelens/internal/domain/models"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	svc := &mockTrades{list: func(models.TradeFilter) ([]models.Trade, error) { return []models.Trade{}, nil }}
	r := newTestRouter(t, svc, &mockScreens{}, nil)

	w := do(r, http.MethodGet, "/api/v1/trades", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if w.Body.String() != "[]" {
		t.Fatalf("empty list must be [], got %s", w.Body.String())
	}

	if w := do(r, http.MethodGet, "/swagger/index.html", nil, ""); w.Code != http.StatusOK {
		t.Fatalf("swagger ui: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/uploads/x.png", nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("uploads must not be mounted without a store: %d", w.Code)
	}
}

func TestNewRouter_PanicIsRecovered(t *testing.T) {
	svc := &mockTrades{stats: func(time.Time) (*models.DashboardStats, error) { panic("boom") }}
	r := newTestRouter(t, svc, &mockScreens{}, nil)
	w := do(r, http.MethodGet, "/api/v1/trades/stats", nil, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
	if msg := decodeError(t, w).Message; msg != "Internal server error" {
		t.Fatalf("message=%q", msg)
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &mockTrades{list: func(models.TradeFilter) ([]models.Trade, error) { return nil, nil }}
	h := NewHandler(svc, &mockScreens{}, nil, Options{})
	r := NewRouter(h, RouterConfig{RateLimitPerMinute: 2})

	codes := make([]int, 3)
	for i := range codes {
		codes[i] = do(r, http.MethodGet, "/api/v1/trades", nil, "").Code
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes=%v", codes)
	}
}
