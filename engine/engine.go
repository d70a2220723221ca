package engine

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/spacetimeops/relativity/cache"
	"github.com/spacetimeops/relativity/physics"
)

// Request is one calculation request. IncludeAllComponents is a pointer
// so the default (true) applies when the field is absent; only the
// literal boolean false trims the response.
type Request struct {
	Type                 string         `json:"type"`
	Inputs               map[string]any `json:"inputs"`
	IncludeAllComponents *bool          `json:"include_all_components"`
}

// includeAll reports whether the full metric component set is requested.
func (r Request) includeAll() bool {
	return r.IncludeAllComponents == nil || *r.IncludeAllComponents
}

// Engine dispatches requests to validator/solver pairs, memoizing
// results in an injected Store. Construct one per service instance; it
// holds no hidden package-level state, so tests can build isolated
// engines around their own stores.
type Engine struct {
	ops   map[string]physics.Operation
	store cache.Store
	keyer cache.Keyer
	group singleflight.Group
}

// New creates an Engine over the given store, keyer, and dispatch table.
// Passing nil ops installs the full physics catalog.
func New(store cache.Store, keyer cache.Keyer, ops map[string]physics.Operation) *Engine {
	if ops == nil {
		ops = physics.Catalog()
	}
	return &Engine{ops: ops, store: store, keyer: keyer}
}

// Types returns the calculation types this engine can dispatch.
func (e *Engine) Types() int { return len(e.ops) }

// Calculate runs one request to completion: resolve, validate, cache
// lookup, solve on miss, store, shape. Concurrent requests for the same
// key are collapsed into a single solver run so an over-capacity insert
// still evicts exactly once.
func (e *Engine) Calculate(ctx context.Context, req Request) (physics.Result, error) {
	op, ok := e.ops[req.Type]
	if !ok {
		return physics.Result{}, newError(KindUnsupportedType,
			"unsupported calculation type: %q", req.Type)
	}

	if err := op.Validate(req.Inputs); err != nil {
		return physics.Result{}, Classify(err)
	}

	key, err := e.keyer.Key(req.Type, req.Inputs)
	if err != nil {
		return physics.Result{}, Classify(err)
	}

	result, err := e.lookupOrSolve(key, op, req.Inputs)
	if err != nil {
		return physics.Result{}, err
	}

	return shape(result, req.includeAll()), nil
}

func (e *Engine) lookupOrSolve(key string, op physics.Operation, inputs map[string]any) (physics.Result, error) {
	if cached, ok := e.store.Get(key); ok {
		return cached.(physics.Result), nil
	}

	v, err, _ := e.group.Do(key, func() (any, error) {
		// Re-check under the flight: a concurrent caller may have
		// stored the result between our miss and this closure.
		if cached, ok := e.store.Get(key); ok {
			return cached, nil
		}

		result, err := op.Solve(inputs)
		if err != nil {
			return nil, Classify(err)
		}
		if !result.Finite() {
			return nil, newError(KindInternal,
				"calculation produced a non-finite value for type %q", result.Type)
		}

		e.store.Put(key, result)
		return result, nil
	})
	if err != nil {
		return physics.Result{}, Classify(err)
	}
	return v.(physics.Result), nil
}

// shape trims the metric components to {g_tt, g_rr} when the caller
// opted out of the full set; every other field is left untouched. The
// cached result is never mutated.
func shape(res physics.Result, includeAll bool) physics.Result {
	if includeAll || res.Metric == nil {
		return res
	}
	res.Metric = &physics.MetricComponents{
		Gtt: res.Metric.Gtt,
		Grr: res.Metric.Grr,
	}
	return res
}
