package observe

import (
	"context"
	"time"

	"github.com/spacetimeops/relativity/engine"
	"github.com/spacetimeops/relativity/physics"
)

// Calculator is the execution surface the middleware wraps; the engine
// satisfies it directly.
type Calculator interface {
	Calculate(ctx context.Context, req engine.Request) (physics.Result, error)
}

// Middleware instruments calculation execution with tracing, metrics,
// and logging. Errors from the wrapped calculator are recorded and
// propagated unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware assembles a middleware from the three telemetry parts.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{tracer: tracer, metrics: metrics, logger: logger}
}

// MiddlewareFromObserver builds a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Wrap returns a Calculator that instruments every call to next.
func (m *Middleware) Wrap(next Calculator) Calculator {
	return &instrumented{mw: m, next: next}
}

type instrumented struct {
	mw   *Middleware
	next Calculator
}

func (c *instrumented) Calculate(ctx context.Context, req engine.Request) (physics.Result, error) {
	ctx, span := c.mw.tracer.StartSpan(ctx, req.Type)
	start := time.Now()

	result, err := c.next.Calculate(ctx, req)

	duration := time.Since(start)
	c.mw.tracer.EndSpan(span, err)
	c.mw.metrics.RecordCalculation(ctx, req.Type, duration, err)

	logger := c.mw.logger.WithCalculation(req.Type)
	fields := []Field{
		{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000.0},
	}
	if err != nil {
		fields = append(fields, Field{Key: "error", Value: err.Error()})
		logger.Error(ctx, "calculation failed", fields...)
	} else {
		if !result.Implemented {
			fields = append(fields, Field{Key: "implemented", Value: false})
		}
		logger.Info(ctx, "calculation completed", fields...)
	}

	return result, err
}
