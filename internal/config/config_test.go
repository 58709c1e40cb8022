package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.DataSource != SourceFixture {
		t.Fatalf("expected fixture source by default, got %q", cfg.DataSource)
	}
	if cfg.UseRealData() {
		t.Fatal("expected placeholder mode by default")
	}
	if cfg.ESPN.BaseURL != defaultESPNBaseURL {
		t.Fatalf("unexpected base url %q", cfg.ESPN.BaseURL)
	}
	if cfg.ESPN.Timeout != defaultAPITimeout {
		t.Fatalf("unexpected timeout %v", cfg.ESPN.Timeout)
	}
	if cfg.Cache.Duration != defaultCacheDuration {
		t.Fatalf("unexpected cache duration %v", cfg.Cache.Duration)
	}
	if !cfg.Cache.FallbackToPlaceholder {
		t.Fatal("expected fallback enabled by default")
	}
	if cfg.Redis.Enabled() {
		t.Fatal("expected redis disabled by default")
	}
	if !cfg.Refresh.Enabled || cfg.Refresh.Interval != defaultRefreshInterval {
		t.Fatalf("unexpected refresh config %+v", cfg.Refresh)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(envPort, "9999")
	t.Setenv(envDataSource, SourceESPN)
	t.Setenv(envESPNAPIKey, "secret")
	t.Setenv(envAPITimeout, "3s")
	t.Setenv(envCacheDuration, "90s")
	t.Setenv(envCacheTTLGames, "30s")
	t.Setenv(envFallback, "false")
	t.Setenv(envRedisAddr, "localhost:6379")
	t.Setenv(envRefreshInterval, "45s")
	t.Setenv(envAdminToken, "tok")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if !cfg.UseRealData() {
		t.Fatal("expected real data mode")
	}
	if cfg.ESPN.APIKey != "secret" || cfg.ESPN.Timeout != 3*time.Second {
		t.Fatalf("unexpected api config %+v", cfg.ESPN)
	}
	if cfg.Cache.Duration != 90*time.Second || cfg.Cache.GamesTTL != 30*time.Second {
		t.Fatalf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Cache.FallbackToPlaceholder {
		t.Fatal("expected fallback disabled")
	}
	if !cfg.Redis.Enabled() {
		t.Fatal("expected redis enabled")
	}
	if cfg.Refresh.Interval != 45*time.Second {
		t.Fatalf("unexpected refresh interval %v", cfg.Refresh.Interval)
	}
	if cfg.AdminToken != "tok" {
		t.Fatalf("unexpected admin token %q", cfg.AdminToken)
	}
}

func TestResolveDataSourceCompatibilityToggle(t *testing.T) {
	t.Setenv(envUseRealData, "true")
	if got := resolveDataSource(); got != SourceESPN {
		t.Fatalf("expected espn via toggle, got %q", got)
	}

	// Explicit DATA_SOURCE wins over the toggle.
	t.Setenv(envDataSource, SourceFixture)
	if got := resolveDataSource(); got != SourceFixture {
		t.Fatalf("expected explicit source to win, got %q", got)
	}
}

func TestDurationEnvRejectsGarbage(t *testing.T) {
	t.Setenv(envCacheDuration, "not-a-duration")
	if got := durationEnvOrDefault(envCacheDuration, defaultCacheDuration); got != defaultCacheDuration {
		t.Fatalf("expected default for garbage value, got %v", got)
	}

	t.Setenv(envCacheDuration, "-5m")
	if got := durationEnvOrDefault(envCacheDuration, defaultCacheDuration); got != defaultCacheDuration {
		t.Fatalf("expected default for negative value, got %v", got)
	}
}

func TestBoolEnv(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "no": false,
		"maybe": true, // falls back to default
	}
	for raw, want := range cases {
		t.Setenv(envMetricsEnabled, raw)
		if got := boolEnvOrDefault(envMetricsEnabled, true); got != want {
			t.Fatalf("value %q: expected %v, got %v", raw, want, got)
		}
	}
}
