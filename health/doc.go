// Package health provides liveness and readiness probes for the
// calculation service, including a check over the memoization cache.
package health
