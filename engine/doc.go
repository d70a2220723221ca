// Package engine dispatches calculation requests: it resolves the
// validator/solver pair for a request's type, runs validation, consults
// the memoization cache, solves on a miss, and shapes the response.
//
// The engine performs no recovery; every failure propagates to the
// boundary as a typed *Error carrying its own HTTP status mapping. There
// is no retry, timeout, or cancellation policy here — solvers are pure,
// fast arithmetic, and any such policy belongs to the hosting layer.
package engine
