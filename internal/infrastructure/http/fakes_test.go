package httpserver

import (
	"context"
	"errors"
	"sync"

	"like-service/internal/application"
)

var _ application.CounterStore = (*failingStore)(nil)
var _ application.CounterStore = (*panicStore)(nil)

var errStoreDown = errors.New("dial tcp 10.0.0.7:6379: connection refused")

// failingStore fails every call and counts how often it was asked to mutate.
type failingStore struct {
	mu    sync.Mutex
	err   error
	incrs int
}

func (f *failingStore) Get(context.Context, string) (int64, error) { return 0, f.err }

func (f *failingStore) Incr(context.Context, string) (int64, error) {
	f.mu.Lock()
	f.incrs++
	f.mu.Unlock()
	return 0, f.err
}

type panicStore struct{}

func (panicStore) Get(context.Context, string) (int64, error)  { panic("boom") }
func (panicStore) Incr(context.Context, string) (int64, error) { panic("boom") }
