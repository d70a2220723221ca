package health

import (
	"context"

	"github.com/spacetimeops/relativity/cache"
)

// CacheChecker reports the memoization cache's occupancy. A full cache is
// degraded, not unhealthy: the service still answers, it just recomputes
// evicted entries.
type CacheChecker struct {
	stats func() cache.Stats
}

// NewCacheChecker creates a checker over a stats snapshot function.
func NewCacheChecker(stats func() cache.Stats) *CacheChecker {
	return &CacheChecker{stats: stats}
}

func (c *CacheChecker) Name() string { return "cache" }

func (c *CacheChecker) Check(ctx context.Context) Result {
	s := c.stats()
	details := map[string]any{
		"entries":   s.Entries,
		"capacity":  s.Capacity,
		"hits":      s.Hits,
		"misses":    s.Misses,
		"evictions": s.Evictions,
	}

	if s.Entries >= s.Capacity {
		return Degraded("cache at capacity; FIFO eviction active").WithDetails(details)
	}
	return Healthy("cache below capacity").WithDetails(details)
}

// DispatcherChecker verifies the engine has a non-empty dispatch table.
type DispatcherChecker struct {
	types func() int
}

// NewDispatcherChecker creates a checker over the engine's type count.
func NewDispatcherChecker(types func() int) *DispatcherChecker {
	return &DispatcherChecker{types: types}
}

func (d *DispatcherChecker) Name() string { return "dispatcher" }

func (d *DispatcherChecker) Check(ctx context.Context) Result {
	n := d.types()
	if n == 0 {
		return Unhealthy("dispatch table is empty")
	}
	return Healthy("dispatch table loaded").WithDetails(map[string]any{
		"calculation_types": n,
	})
}
