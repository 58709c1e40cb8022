package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gridironfacts/nfl-data-service/internal/config"
	"github.com/gridironfacts/nfl-data-service/internal/dataservice"
	"github.com/gridironfacts/nfl-data-service/internal/metrics"
	"github.com/gridironfacts/nfl-data-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:       "0",
		DataSource: config.SourceFixture,
		Cache: config.CacheConfig{
			Duration:              time.Minute,
			FallbackToPlaceholder: true,
		},
		Refresh: config.RefreshConfig{Enabled: false},
		Metrics: config.MetricsConfig{Enabled: false},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	return New(testConfig(), logger)
}

func TestServerServesDashboardFromFixture(t *testing.T) {
	srv := newTestServer(t)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/dashboard", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body dataservice.DashboardData
	testutil.DecodeJSON(t, rr, &body)
	if len(body.LiveGames) == 0 {
		t.Fatal("expected demo games")
	}
	if len(body.LeagueStandings) == 0 || len(body.LeagueLeaders) == 0 || len(body.NewsArticles) == 0 {
		t.Fatal("expected all categories populated")
	}
}

func TestServerServesHealthAndReady(t *testing.T) {
	srv := newTestServer(t)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	// Refresher disabled: readiness is unconditional.
	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestServerCacheClearEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/cache/clear", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestCategoryTTLs(t *testing.T) {
	cache := config.CacheConfig{
		GamesTTL: 30 * time.Second,
		NewsTTL:  10 * time.Minute,
	}
	ttls := categoryTTLs(cache)
	if len(ttls) != 2 {
		t.Fatalf("unexpected ttls %v", ttls)
	}
	if ttls[dataservice.CategoryGames] != 30*time.Second {
		t.Fatalf("unexpected games ttl %v", ttls[dataservice.CategoryGames])
	}

	if got := categoryTTLs(config.CacheConfig{}); got != nil {
		t.Fatalf("expected nil for no overrides, got %v", got)
	}
}

func TestBuildMetricsDisabled(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec, srv, shutdown := buildMetrics(testConfig(), logger, nil)
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if srv != nil {
		t.Fatal("expected no metrics server when disabled")
	}
	if shutdown == nil {
		t.Fatal("expected shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestBuildMetricsReusesInjectedRecorder(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	injected := metrics.NewRecorder()
	rec, srv, shutdown := buildMetrics(testConfig(), logger, injected)
	if rec != injected {
		t.Fatal("expected injected recorder reused")
	}
	if srv != nil || shutdown != nil {
		t.Fatal("expected no metrics server or shutdown for injected recorder")
	}
}

func TestSelectSourceFallsBackToFixture(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()

	cfg := testConfig()
	cfg.DataSource = "mystery"
	if selectSource(cfg, logger) == nil {
		t.Fatal("expected fixture fallback for unknown source")
	}

	cfg.DataSource = config.SourceESPN
	if selectSource(cfg, logger) == nil {
		t.Fatal("expected espn client")
	}
}
