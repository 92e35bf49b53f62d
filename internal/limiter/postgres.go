package limiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PG is a PostgreSQL-backed throttle. Each key owns one row in
// resync_throttle that is taken over only after held_until has passed.
type PG struct {
	pool   pgxQuerier
	window time.Duration
}

type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a PostgreSQL-backed throttle.
func NewPG(pool *pgxpool.Pool, window time.Duration) *PG {
	return &PG{pool: pool, window: windowOrDefault(window)}
}

// NewPGWithQuerier constructs a PostgreSQL-backed throttle over any querier.
func NewPGWithQuerier(q pgxQuerier, window time.Duration) *PG {
	return &PG{pool: q, window: windowOrDefault(window)}
}

// Acquire inserts or takes over the key row. The conditional upsert
// returns no row while another holder's window is still open.
func (l *PG) Acquire(ctx context.Context, key string) (bool, error) {
	const q = `
INSERT INTO resync_throttle (key, held_until)
VALUES ($1, now() + $2::interval)
ON CONFLICT (key) DO UPDATE
SET held_until = EXCLUDED.held_until
WHERE resync_throttle.held_until <= now()
RETURNING held_until`
	var heldUntil time.Time
	err := l.pool.QueryRow(ctx, q, key, l.window).Scan(&heldUntil)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	default:
		return false, fmt.Errorf("acquire %s: %w", key, err)
	}
}
