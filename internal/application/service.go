package application

import (
	"context"
	"errors"
	"fmt"

	"like-service/internal/domain"
)

type LikeService struct {
	store CounterStore
	key   string
}

type Option func(*LikeService)

func WithKey(key string) Option { return func(s *LikeService) { s.key = key } }

func NewLikeService(store CounterStore, opts ...Option) *LikeService {
	s := &LikeService{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.key == "" {
		s.key = domain.DefaultCounterKey
	}
	return s
}

func (s *LikeService) Key() string { return s.key }

// Count reads the counter; a key that was never incremented reads as zero.
func (s *LikeService) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Get(ctx, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: get %q: %w", ErrStore, s.key, err)
	}
	return n, nil
}

// Like increments the counter exactly once and returns the new value.
func (s *LikeService) Like(ctx context.Context) (int64, error) {
	n, err := s.store.Incr(ctx, s.key)
	if err != nil {
		return 0, fmt.Errorf("%w: incr %q: %w", ErrStore, s.key, err)
	}
	return n, nil
}

// Counter returns the current state as a domain value.
func (s *LikeService) Counter(ctx context.Context) (domain.LikeCounter, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return domain.LikeCounter{}, err
	}
	return domain.LikeCounter{Key: s.key, Value: n}, nil
}
