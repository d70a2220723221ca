// Package cache provides the bounded memoization store for calculation
// results and the deterministic key derivation that feeds it.
//
// The store is capacity-bounded with FIFO eviction: when an insert pushes
// the entry count over the bound, the earliest-inserted entry is removed,
// irrespective of how recently it was read. There is no TTL; entries live
// until evicted or the process exits. The store is never correctness
// critical — a wrong answer is never served; at worst an evicted entry is
// recomputed.
package cache
