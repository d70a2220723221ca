package cache

// DefaultMaxEntries is the capacity bound the service ships with.
const DefaultMaxEntries = 100

// Policy configures the memoization store.
type Policy struct {
	// MaxEntries is the capacity bound. Values <= 0 fall back to
	// DefaultMaxEntries.
	MaxEntries int
}

// DefaultPolicy returns the standard bounded-FIFO policy.
func DefaultPolicy() Policy {
	return Policy{MaxEntries: DefaultMaxEntries}
}

// maxEntries returns the effective capacity.
func (p Policy) maxEntries() int {
	if p.MaxEntries <= 0 {
		return DefaultMaxEntries
	}
	return p.MaxEntries
}
