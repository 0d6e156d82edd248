package tracestore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/rafaeljc/dbc/internal/observability"
)

var (
	_ observability.Checker = (*RedisHealthChecker)(nil)
	_ observability.Checker = (*PostgresHealthChecker)(nil)
)

// RedisHealthChecker reports whether the Redis trace backend is reachable.
type RedisHealthChecker struct {
	client *redis.Client
}

// NewRedisHealthChecker creates a checker for client.
func NewRedisHealthChecker(client *redis.Client) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// Name returns the component name.
func (h *RedisHealthChecker) Name() string {
	return "redis"
}

// Check pings Redis.
func (h *RedisHealthChecker) Check(ctx context.Context) error {
	if h.client == nil {
		return errors.New("redis client is nil")
	}
	return h.client.Ping(ctx).Err()
}

// PostgresHealthChecker reports whether the Postgres trace backend is reachable.
type PostgresHealthChecker struct {
	pool *pgxpool.Pool
}

// NewPostgresHealthChecker creates a checker for pool.
func NewPostgresHealthChecker(pool *pgxpool.Pool) *PostgresHealthChecker {
	return &PostgresHealthChecker{pool: pool}
}

// Name returns the component name.
func (h *PostgresHealthChecker) Name() string {
	return "postgres"
}

// Check pings the pool.
func (h *PostgresHealthChecker) Check(ctx context.Context) error {
	if h.pool == nil {
		return errors.New("database pool is nil")
	}
	return h.pool.Ping(ctx)
}
