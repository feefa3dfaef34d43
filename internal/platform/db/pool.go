package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Idle connections are recycled well before Postgres' own idle timeout so a
// quiet record store does not sit on dead connections overnight.
const (
	connIdleTime      = 5 * time.Minute
	healthCheckPeriod = time.Minute
)

// NewPool opens the process-wide connection pool every repository shares.
// The pool is pinged before it is handed out; a server that cannot reach
// its store should fail at startup, not on the first request.
func NewPool(ctx context.Context, databaseURL string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	pc.MaxConns = maxConns
	pc.MinConns = minConns
	pc.MaxConnIdleTime = connIdleTime
	pc.HealthCheckPeriod = healthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
