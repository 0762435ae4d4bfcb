package state

import (
	"sync"

	"github.com/rizaldyc/simm-backend/internal/model"
)

// State owns the authoritative in-memory collections. Every domain mutator
// goes through Mutate so the sync controller observes each change exactly
// once; Replace is reserved for the controller itself when it overwrites
// collections from the local store or the cloud.
type State struct {
	mu       sync.RWMutex
	snap     model.Snapshot
	onChange func()
}

// New creates an empty state container
func New() *State {
	return &State{}
}

// OnChange registers the single observer notified after each mutation.
// The callback runs outside the state lock.
func (s *State) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current collections
func (s *State) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Replace swaps in a new snapshot without firing the change observer.
// Used when loading from the local store or applying a cloud fetch, where
// notifying would echo the load back out as a push.
func (s *State) Replace(snap model.Snapshot) {
	s.mu.Lock()
	s.snap = snap.Clone()
	s.mu.Unlock()
}

// Mutate applies fn to the collections under the write lock, then notifies
// the observer. The returned error is fn's own, letting business-rule
// checks (duplicate submission, not-found) stay atomic with the write.
func (s *State) Mutate(fn func(*model.Snapshot) error) error {
	s.mu.Lock()
	err := fn(&s.snap)
	notify := s.onChange
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if notify != nil {
		notify()
	}
	return nil
}
