package application

import (
	"context"
	"errors"
	"sync"

	"like-service/internal/domain"
)

var (
	ErrRepo = errors.New("repo error")
)

type fakeCounterStore struct {
	mu    sync.Mutex
	store map[string]int64
	err   error
	calls int
}

func (f *fakeCounterStore) Get(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	n, ok := f.store[key]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

func (f *fakeCounterStore) Incr(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	if f.store == nil {
		f.store = map[string]int64{}
	}
	f.store[key]++
	return f.store[key], nil
}
