package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps OpenTelemetry tracing with calculation-shaped spans.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - EndSpan is best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a span named after the calculation type.
	StartSpan(ctx context.Context, calcType string) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer wraps the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, calcType string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "calc.exec."+calcType,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("calc.type", calcType)),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("calc.error", true))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
