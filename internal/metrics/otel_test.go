package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected a usable recorder")
	}
	if handler != nil {
		t.Fatalf("disabled telemetry should not expose a handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown should be a no-op, got %v", err)
	}

	rec.RecordFetch("tba", time.Millisecond, nil)
	if rec.Fetches("tba") != 1 {
		t.Fatalf("recorder should still count without telemetry")
	}
}

func TestSetupWiresInstruments(t *testing.T) {
	origProm := promReaderFactory
	origInstr := instrumentFactory
	defer func() {
		promReaderFactory = origProm
		instrumentFactory = origInstr
	}()

	var built bool
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return sdkmetric.NewManualReader(), http.NotFoundHandler(), nil
	}
	instrumentFactory = func(provider metric.MeterProvider) (*otelInstruments, error) {
		built = true
		return newOtelInstruments(provider)
	}

	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer shutdown(context.Background())

	if !built {
		t.Fatalf("instrument factory was not invoked")
	}
	if handler == nil {
		t.Fatalf("expected the prometheus handler")
	}

	rec.RecordFetch("tba", 2*time.Millisecond, nil)
	rec.RecordSolve("2016test", time.Millisecond, nil)
	if rec.Fetches("tba") != 1 {
		t.Fatalf("recorder should count alongside instruments")
	}
}

func TestSetupPropagatesReaderFailure(t *testing.T) {
	orig := promReaderFactory
	defer func() { promReaderFactory = orig }()

	boom := errors.New("exporter boom")
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, boom
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); !errors.Is(err, boom) {
		t.Fatalf("expected factory error, got %v", err)
	}
}
