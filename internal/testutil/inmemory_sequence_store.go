package testutil

import (
	"context"
	"sync"

	"github.com/veloralabs/agencydesk/internal/domain/sequence"
)

// InMemorySequenceStore implements sequence.Store with the same
// contract as the database-backed allocator: atomic per-key increments
// starting at 1.
type InMemorySequenceStore struct {
	mu       sync.Mutex
	counters map[sequence.Key]int64
}

// NewInMemorySequenceStore creates a new in-memory sequence store
func NewInMemorySequenceStore() *InMemorySequenceStore {
	return &InMemorySequenceStore{
		counters: make(map[sequence.Key]int64),
	}
}

func (s *InMemorySequenceStore) Next(ctx context.Context, key sequence.Key) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[key]++
	return s.counters[key], nil
}

// Current returns the last issued value for key without consuming one
func (s *InMemorySequenceStore) Current(key sequence.Key) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[key]
}

// Clear removes all counters
func (s *InMemorySequenceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = make(map[sequence.Key]int64)
}
