package cache

// Store is the interface for memoizing calculation results.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Get never errors; it returns (nil, false) on miss.
// - Put with an existing key overwrites the value in place and keeps the
//   entry's original insertion position.
type Store interface {
	// Get retrieves a cached value. Returns (nil, false) on miss.
	Get(key string) (any, bool)

	// Put stores a value, evicting the oldest-inserted entry if the
	// store would exceed its capacity.
	Put(key string, value any)

	// Len reports the current number of entries.
	Len() int
}

// Stats is a point-in-time snapshot of store activity.
type Stats struct {
	Entries   int
	Capacity  int
	Hits      int64
	Misses    int64
	Evictions int64
}
