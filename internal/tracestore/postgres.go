package tracestore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rafaeljc/dbc/internal/config"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// NewPostgresPool opens a connection pool and pings it before returning.
// The caller owns the pool.
func NewPostgresPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	initCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(initCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(initCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

const (
	insertTraceSQL = `
		INSERT INTO contract_traces (id, category, line, service, recorded_at)
		VALUES ($1, $2, $3, $4, $5)`

	recentTracesSQL = `
		SELECT id, category, line, service, recorded_at
		FROM contract_traces
		ORDER BY recorded_at DESC
		LIMIT $1`
)

// PostgresSink inserts trace records into the contract_traces table.
type PostgresSink struct {
	pool    *pgxpool.Pool
	service string
	writer  writer
}

var (
	_ contract.Sink = (*PostgresSink)(nil)
	_ Reader        = (*PostgresSink)(nil)
)

// NewPostgresSink creates a sink writing through pool.
// timeout bounds each insert.
func NewPostgresSink(pool *pgxpool.Pool, service string, timeout time.Duration, logger *slog.Logger) *PostgresSink {
	if pool == nil {
		panic("tracestore: postgres pool cannot be nil")
	}
	return &PostgresSink{
		pool:    pool,
		service: service,
		writer: writer{
			backend: "postgres",
			timeout: timeout,
			logger:  loggerOrDefault(logger),
		},
	}
}

// Trace inserts one record.
func (s *PostgresSink) Trace(category contract.Category, line string) {
	s.writer.write(category, line, func(ctx context.Context) error {
		rec := newRecord(s.service, category, line)
		if _, err := s.pool.Exec(ctx, insertTraceSQL,
			rec.ID, rec.Category, rec.Line, rec.Service, rec.RecordedAt,
		); err != nil {
			return fmt.Errorf("failed to insert trace: %w", err)
		}
		return nil
	})
}

// Recent returns up to limit records, newest first.
func (s *PostgresSink) Recent(ctx context.Context, limit int64) ([]Record, error) {
	if limit <= 0 {
		return []Record{}, nil
	}

	rows, err := s.pool.Query(ctx, recentTracesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query traces: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Category, &rec.Line, &rec.Service, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trace: %w", err)
		}
		rec.RecordedAt = rec.RecordedAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate traces: %w", err)
	}
	return records, nil
}
