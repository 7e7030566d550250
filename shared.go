package hako

import "sync"

// Shared guards a Registry with a read/write lock so several goroutines can
// use it. Readers run concurrently; writers are exclusive.
//
// The callbacks receive the registry itself, not the Shared, and must not
// call back into the same Shared: the lock is not reentrant.
type Shared struct {
	r  *Registry
	mu sync.RWMutex
}

// NewShared wraps r. r must not be used directly afterwards.
func NewShared(r *Registry) *Shared {
	return &Shared{r: r}
}

// Read runs fn under the read lock with a read-only view of the registry.
//
// Several Read callbacks may run at once. Pointers returned by Borrow inside
// fn must not be written through, as that races with the other readers; use
// Get for a private copy, or Write for mutation.
func (s *Shared) Read(fn func(Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(view{r: s.r})
}

// Write runs fn under the write lock.
func (s *Shared) Write(fn func(*Registry) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.r)
}
