package tracestore

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rafaeljc/dbc/internal/config"
	"github.com/rafaeljc/dbc/internal/logger"
	"github.com/rafaeljc/dbc/internal/observability"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// Backend is the trace sink selected by configuration, plus what the
// service needs around it: a reader for persisted backends, readiness
// checkers, and cleanup.
type Backend struct {
	Sink     contract.Sink
	Reader   Reader // nil for log and stderr sinks
	Checkers []observability.Checker

	closers []func()
}

// Close releases connections and caches in reverse order of creation.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
	b.closers = nil
}

// Open builds the sink named by cfg.Contract.Sink. stderr receives output
// for the "stderr" sink. On error, anything already opened is closed.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger, stderr io.Writer) (*Backend, error) {
	b := &Backend{}

	switch cfg.Contract.Sink {
	case config.SinkLog:
		b.Sink = contract.NewSlogSink(log).WithLevel(logger.ContractLevel(&cfg.App))

	case config.SinkStderr:
		b.Sink = contract.NewWriterSink(stderr)

	case config.SinkRedis:
		client, err := NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = client.Close() })

		sink := NewRedisSink(client, RedisSinkOptions{
			Key:     cfg.Redis.TraceKey,
			MaxLen:  cfg.Redis.TraceMaxLen,
			Service: cfg.App.Name,
			Timeout: cfg.Contract.SinkTimeout,
			Logger:  log,
		})
		b.Sink, b.Reader = sink, sink
		b.Checkers = append(b.Checkers, NewRedisHealthChecker(client))

	case config.SinkPostgres:
		pool, err := NewPostgresPool(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, pool.Close)

		sink := NewPostgresSink(pool, cfg.App.Name, cfg.Contract.SinkTimeout, log)
		b.Sink, b.Reader = sink, sink
		b.Checkers = append(b.Checkers, NewPostgresHealthChecker(pool))

	default:
		return nil, fmt.Errorf("unknown trace sink %q", cfg.Contract.Sink)
	}

	if cfg.Contract.DedupeEnabled() {
		dedupe, err := NewDedupeSink(b.Sink, cfg.Contract.DedupeWindow, cfg.Contract.DedupeCapacity)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.closers = append(b.closers, dedupe.Close)
		b.Sink = dedupe
	}

	return b, nil
}
