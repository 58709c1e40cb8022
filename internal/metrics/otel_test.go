package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestSetupEnabledWiresPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		Port:    "9090",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
	}()

	if rec == nil || rec.otel == nil {
		t.Fatal("expected recorder with instruments")
	}
	if handler == nil {
		t.Fatal("expected prometheus handler")
	}

	// Recording through the full pipeline must not panic.
	rec.RecordSourceAttempt("games", 10*time.Millisecond, errors.New("boom"))
	rec.RecordHTTPRequest(http.MethodGet, "/games", http.StatusOK, time.Millisecond)
	rec.RecordRefreshCycle(time.Second, nil)
}

func TestSetupSurfacesReaderErrors(t *testing.T) {
	original := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry exploded")
	}
	defer func() { promReaderFactory = original }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil {
		t.Fatal("expected error from reader factory")
	}
}

func TestInstrumentsNilSafe(t *testing.T) {
	var inst *otelInstruments
	// Must not panic.
	inst.recordHTTPRequest(http.MethodGet, "/games", http.StatusOK, time.Millisecond)
	inst.recordSourceAttempt("games", time.Millisecond, nil)
	inst.recordCache("games", true)
	inst.recordFallback("games")
	inst.recordRefresh(time.Millisecond, nil)
}

func TestNewOtelInstrumentsWithNoopProvider(t *testing.T) {
	var provider metric.MeterProvider = noop.NewMeterProvider()
	inst, err := newOtelInstruments(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst == nil {
		t.Fatal("expected instruments")
	}
	inst.recordSourceAttempt("games", time.Millisecond, errors.New("boom"))
}
