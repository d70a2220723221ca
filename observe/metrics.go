package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records execution metrics for calculations.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCalculation records one calculation with its duration and
	// error status.
	RecordCalculation(ctx context.Context, calcType string, duration time.Duration, err error)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates calculation instruments on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"calc.exec.total",
		metric.WithDescription("Total number of calculations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"calc.exec.errors",
		metric.WithDescription("Total number of failed calculations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"calc.exec.duration_ms",
		metric.WithDescription("Calculation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

func (m *metricsImpl) RecordCalculation(ctx context.Context, calcType string, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("calc.type", calcType))

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000.0, opt)
}

// noopMetrics records nothing.
type noopMetrics struct{}

func (noopMetrics) RecordCalculation(context.Context, string, time.Duration, error) {}

// NopMetrics returns a Metrics that records nothing.
func NopMetrics() Metrics { return noopMetrics{} }

// CacheStats is the snapshot the cache gauges observe. Kept local so the
// package does not depend on the cache implementation.
type CacheStats struct {
	Entries   int64
	Capacity  int64
	Hits      int64
	Misses    int64
	Evictions int64
}

// RegisterCacheGauges registers observable instruments that report the
// memoization cache's occupancy and activity counters via stats.
func RegisterCacheGauges(meter metric.Meter, stats func() CacheStats) error {
	entries, err := meter.Int64ObservableGauge(
		"calc.cache.entries",
		metric.WithDescription("Current number of cached results"),
	)
	if err != nil {
		return err
	}
	capacity, err := meter.Int64ObservableGauge(
		"calc.cache.capacity",
		metric.WithDescription("Configured cache capacity"),
	)
	if err != nil {
		return err
	}
	hits, err := meter.Int64ObservableCounter(
		"calc.cache.hits",
		metric.WithDescription("Cache hits since process start"),
	)
	if err != nil {
		return err
	}
	misses, err := meter.Int64ObservableCounter(
		"calc.cache.misses",
		metric.WithDescription("Cache misses since process start"),
	)
	if err != nil {
		return err
	}
	evictions, err := meter.Int64ObservableCounter(
		"calc.cache.evictions",
		metric.WithDescription("FIFO evictions since process start"),
	)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			s := stats()
			o.ObserveInt64(entries, s.Entries)
			o.ObserveInt64(capacity, s.Capacity)
			o.ObserveInt64(hits, s.Hits)
			o.ObserveInt64(misses, s.Misses)
			o.ObserveInt64(evictions, s.Evictions)
			return nil
		},
		entries, capacity, hits, misses, evictions,
	)
	return err
}
