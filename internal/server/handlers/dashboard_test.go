package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/RavinduUni/coinpulse/internal/infrastructure/clients"
	"github.com/RavinduUni/coinpulse/pkg/config"
)

const marketsBody = `[
	{"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "current_price": 67000.12,
	 "market_cap": 1320000000000, "market_cap_rank": 1, "total_volume": 28000000000,
	 "price_change_percentage_24h": 2.4, "circulating_supply": 19500000},
	{"id": "ethereum", "symbol": "eth", "name": "Ethereum", "current_price": 3500.5,
	 "market_cap": 420000000000, "market_cap_rank": 2, "total_volume": 12000000000,
	 "price_change_percentage_24h": -1.1}
]`

const globalBody = `{"data": {"active_cryptocurrencies": 12000, "markets": 900,
	"total_market_cap": {"usd": 2410000000000}, "total_volume": {"usd": 95000000000},
	"market_cap_percentage": {"btc": 54.2}, "market_cap_change_percentage_24h_usd": 1.7}}`

func newTestRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			BaseURL:         srv.URL,
			APIKey:          "test-key",
			Timeout:         5,
			CacheTTLSeconds: 0,
		},
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()

	market := clients.New(cfg.Upstream, zerolog.Nop())
	New(market, zerolog.Nop(), cfg).SetupHandlers(router)

	return router
}

func TestDashboardRendersBothSections(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/global":
			w.Write([]byte(globalBody))
		case "/coins/markets":
			w.Write([]byte(marketsBody))
		default:
			http.NotFound(w, r)
		}
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"Market Overview",
		"$2.41T",
		"Top Markets",
		"Bitcoin",
		"Ethereum",
		`data-key="bitcoin"`,
		"$67,000.12",
		"-1.10%",
		"Circulating Supply",
		"19,500,000",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

// A failing global fetch must not take the markets table down with it.
func TestDashboardSectionFailureIsIsolated(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/global":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "aggregates unavailable"}`))
		case "/coins/markets":
			w.Write([]byte(marketsBody))
		default:
			http.NotFound(w, r)
		}
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Could not load Market Overview") {
		t.Error("failed section should render its error state")
	}
	if !strings.Contains(body, "aggregates unavailable") {
		t.Error("error state should carry the upstream message")
	}
	if !strings.Contains(body, "Bitcoin") || !strings.Contains(body, "Ethereum") {
		t.Error("healthy section should still render its data")
	}
}

func TestSearchPassesQueryThrough(t *testing.T) {
	var gotQuery string

	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"coins": [{"id": "solana", "name": "Solana", "symbol": "SOL", "market_cap_rank": 5}]}`))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=sol", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotQuery != "sol" {
		t.Errorf("upstream query = %q, want %q", gotQuery, "sol")
	}
	if !strings.Contains(rec.Body.String(), "Solana") {
		t.Error("search page should list the returned coin")
	}
}

func TestTrendingPageRendersError(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "bad key"}`))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trending", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "API Error: 401: bad key") {
		t.Error("trending error page should surface the upstream error")
	}
}
