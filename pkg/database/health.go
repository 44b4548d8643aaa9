package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a snapshot of the sql connection pool.
type PoolStats struct {
	Open       int   `json:"open"`
	InUse      int   `json:"in_use"`
	Idle       int   `json:"idle"`
	MaxOpen    int   `json:"max_open"`
	WaitCount  int64 `json:"wait_count"`
	WaitMillis int64 `json:"wait_ms"`
}

// HealthStatus is the verdict returned by Health. Pool is nil when the
// ping failed.
type HealthStatus struct {
	Status string     `json:"status"`
	PingMs int64      `json:"ping_ms"`
	Pool   *PoolStats `json:"pool,omitempty"`
}

// Health pings the database and snapshots its pool statistics. A ping
// failure yields an "unhealthy" status alongside the error so callers
// can still report the response time.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status: "unhealthy",
			PingMs: time.Since(start).Milliseconds(),
		}, err
	}

	s := db.Stats()
	return &HealthStatus{
		Status: "healthy",
		PingMs: time.Since(start).Milliseconds(),
		Pool: &PoolStats{
			Open:       s.OpenConnections,
			InUse:      s.InUse,
			Idle:       s.Idle,
			MaxOpen:    s.MaxOpenConnections,
			WaitCount:  s.WaitCount,
			WaitMillis: s.WaitDuration.Milliseconds(),
		},
	}, nil
}
