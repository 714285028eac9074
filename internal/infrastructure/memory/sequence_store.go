// Package memory provides in-process adapters. They back tests and any
// embedding of the billing packages that brings its own persistence; the API
// binary itself wires the postgres adapters.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/factuurpro/factuur-api/internal/domain/repository"
	"github.com/factuurpro/factuur-api/internal/domain/sequence"
)

var _ repository.SequenceRepository = (*SequenceStore)(nil)

// SequenceStore keeps the monthly counters in memory. The mutex is the
// serialization the counter contract requires: at most one transition per
// key is in flight at a time.
type SequenceStore struct {
	mu    sync.Mutex
	state sequence.State
}

// NewSequenceStore creates an empty store.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{state: sequence.State{}}
}

// NextSeq applies the pure counter transition under the lock and keeps the
// returned state.
func (s *SequenceStore) NextSeq(_ context.Context, year int, month time.Month) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	issue := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next, assigned := sequence.Next(s.state, issue)
	s.state = next
	return assigned.Seq, nil
}

// State returns a copy of the current counters, for inspection in tests.
func (s *SequenceStore) State() sequence.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(sequence.State, len(s.state))
	for k, v := range s.state {
		out[k] = v
	}
	return out
}
