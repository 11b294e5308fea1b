package pg

import (
	"context"
	"errors"
	"fmt"

	"like-service/internal/domain"

	"github.com/jackc/pgx/v5"
)

// CounterRepo stores counters as rows keyed by name.
type CounterRepo struct{ db *DB }

func NewCounterRepo(db *DB) *CounterRepo { return &CounterRepo{db: db} }

func (r *CounterRepo) Get(ctx context.Context, key string) (int64, error) {
	const q = `SELECT value FROM counters WHERE key=$1`
	var n int64
	err := r.db.Pool.QueryRow(ctx, q, key).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

// Incr relies on the row lock taken by ON CONFLICT DO UPDATE, so concurrent callers serialize.
func (r *CounterRepo) Incr(ctx context.Context, key string) (int64, error) {
	const up = `
        INSERT INTO counters(key, value, updated_at)
        VALUES ($1, 1, now())
        ON CONFLICT (key) DO UPDATE
          SET value=counters.value + 1, updated_at=now()
        RETURNING value`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, up, key).Scan(&n); err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

func (r *CounterRepo) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: pg: %w", domain.ErrStoreUnavailable, err)
}
