package taskmapping

import "sync"

// Representatives caches the canonical Mapping already found for each
// orbit discovered so far, keyed by Mapping.Key, so that repeated queries
// of an already-seen orbit are O(1) instead of re-running a search.
type Representatives struct {
	mu    sync.RWMutex
	index map[string]int
	next  int
}

// NewRepresentatives returns an empty cache.
func NewRepresentatives() *Representatives {
	return &Representatives{index: make(map[string]int)}
}

// Lookup reports the orbit ID previously assigned to canonical, if any.
func (r *Representatives) Lookup(canonical Mapping) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.index[canonical.Key()]
	return id, ok
}

// Insert records canonical as the representative of a new orbit if it
// isn't already known, returning whether it was newly inserted and its
// orbit ID either way.
func (r *Representatives) Insert(canonical Mapping) (isNew bool, orbitID int) {
	key := canonical.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.index[key]; ok {
		return false, id
	}
	id := r.next
	r.index[key] = id
	r.next++
	return true, id
}

// Len returns the number of distinct orbit representatives recorded.
func (r *Representatives) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.index)
}
