package cache

import "sync"

// FIFOStore is an in-memory Store with insertion-order eviction.
//
// The check-then-evict sequence in Put runs under a single mutex so that
// concurrent over-capacity inserts trigger exactly one eviction each;
// two writers can never both observe the same size and double-evict.
type FIFOStore struct {
	mu     sync.Mutex
	values map[string]any
	order  []string
	policy Policy

	hits      int64
	misses    int64
	evictions int64
}

// NewFIFOStore creates an empty store with the given policy.
func NewFIFOStore(policy Policy) *FIFOStore {
	return &FIFOStore{
		values: make(map[string]any, policy.maxEntries()),
		policy: policy,
	}
}

// Get retrieves a value. Reads never affect eviction order.
func (s *FIFOStore) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if ok {
		s.hits++
	} else {
		s.misses++
	}
	return v, ok
}

// Put inserts or overwrites a value. An overwrite keeps the entry's
// original insertion slot; a fresh insert that exceeds capacity evicts
// the single earliest-inserted entry.
func (s *FIFOStore) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[key]; exists {
		s.values[key] = value
		return
	}

	s.values[key] = value
	s.order = append(s.order, key)

	if len(s.order) > s.policy.maxEntries() {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.values, oldest)
		s.evictions++
	}
}

// Len reports the current entry count.
func (s *FIFOStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Stats returns a snapshot of store activity.
func (s *FIFOStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Entries:   len(s.values),
		Capacity:  s.policy.maxEntries(),
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
	}
}

// Ensure FIFOStore implements Store.
var _ Store = (*FIFOStore)(nil)
