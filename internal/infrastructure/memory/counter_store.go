package memory

import (
	"context"
	"sync"

	"like-service/internal/domain"
)

// Store is a process-local CounterStore for development and tests.
type Store struct {
	mu       sync.Mutex
	counters map[string]int64
}

func New() *Store {
	return &Store{counters: map[string]int64{}}
}

func (s *Store) Get(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.counters[key]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

func (s *Store) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key], nil
}

func (s *Store) Ping(context.Context) error { return nil }
