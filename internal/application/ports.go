package application

import "context"

// CounterStore is the external key-value service backing like counts.
type CounterStore interface {
	// Get returns domain.ErrNotFound when the key has never been incremented.
	Get(ctx context.Context, key string) (int64, error)
	// Incr atomically adds one and returns the new value, creating the key at 1.
	Incr(ctx context.Context, key string) (int64, error)
}

// Pinger is implemented by stores that can report their own readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}
