package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"like-service/internal/config"
	"like-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Store keeps counters as plain redis integers; INCR provides the atomicity.
type Store struct {
	Client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{Client: client}
}

// Options builds client options from config. A KV/REDIS URL wins over the discrete fields.
func Options(cfg config.Config) (*redis.Options, error) {
	var opts *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
	}
	opts.DialTimeout = cfg.RedisDialTimeout
	opts.ReadTimeout = cfg.RedisReadTimeout
	opts.WriteTimeout = cfg.RedisWriteTimeout
	if cfg.RedisPoolSize > 0 {
		opts.PoolSize = cfg.RedisPoolSize
	}
	return opts, nil
}

func (s *Store) Get(ctx context.Context, key string) (int64, error) {
	n, err := s.Client.Get(ctx, key).Int64()
	var numErr *strconv.NumError
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, redis.Nil):
		return 0, domain.ErrNotFound
	case errors.As(err, &numErr):
		return 0, fmt.Errorf("counter %q is not an integer: %w", key, err)
	default:
		return 0, unavailable(err)
	}
}

func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.Client.Ping(ctx).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: redis: %w", domain.ErrStoreUnavailable, err)
}
