package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/spacetimeops/relativity/engine"
	"github.com/spacetimeops/relativity/physics"
)

type fakeCalculator struct {
	result physics.Result
	err    error
	calls  int
}

func (f *fakeCalculator) Calculate(ctx context.Context, req engine.Request) (physics.Result, error) {
	f.calls++
	return f.result, f.err
}

type recordingMetrics struct {
	calcType string
	err      error
	calls    int
}

func (r *recordingMetrics) RecordCalculation(_ context.Context, calcType string, _ time.Duration, err error) {
	r.calls++
	r.calcType = calcType
	r.err = err
}

func newTestMiddleware(metrics Metrics, logger Logger) *Middleware {
	tracer := NewTracer(tracenoop.NewTracerProvider().Tracer("test"))
	return NewMiddleware(tracer, metrics, logger)
}

func TestMiddleware_RecordsSuccess(t *testing.T) {
	metrics := &recordingMetrics{}
	var buf bytes.Buffer
	mw := newTestMiddleware(metrics, NewLoggerWithWriter("info", &buf))

	calc := &fakeCalculator{result: physics.Result{Type: "schwarzschild", Implemented: true}}
	wrapped := mw.Wrap(calc)

	_, err := wrapped.Calculate(context.Background(), engine.Request{Type: "schwarzschild"})
	if err != nil {
		t.Fatal(err)
	}

	if metrics.calls != 1 || metrics.calcType != "schwarzschild" || metrics.err != nil {
		t.Errorf("metrics recorded: calls=%d type=%q err=%v", metrics.calls, metrics.calcType, metrics.err)
	}

	var entry map[string]any
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("log output not JSON: %v", jsonErr)
	}
	if entry["msg"] != "calculation completed" {
		t.Errorf("msg = %v", entry["msg"])
	}
}

func TestMiddleware_PropagatesErrorUnchanged(t *testing.T) {
	metrics := &recordingMetrics{}
	mw := newTestMiddleware(metrics, NopLogger())

	wantErr := errors.New("boom")
	wrapped := mw.Wrap(&fakeCalculator{err: wantErr})

	_, err := wrapped.Calculate(context.Background(), engine.Request{Type: "kerr"})
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
	if metrics.err == nil {
		t.Error("error not recorded in metrics")
	}
}

func TestMetrics_NoopMeterAccepted(t *testing.T) {
	m, err := NewMetrics(metricnoop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	// Must not panic.
	m.RecordCalculation(context.Background(), "flrw", time.Millisecond, nil)
}
