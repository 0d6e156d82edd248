package tracestore

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafaeljc/dbc/internal/config"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	if cfg.TLSEnabled && opts.TLSConfig == nil {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	initCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(initCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// RedisSink appends trace records to a capped Redis list.
type RedisSink struct {
	client  *redis.Client
	key     string
	maxLen  int64
	service string
	writer  writer
}

var (
	_ contract.Sink = (*RedisSink)(nil)
	_ Reader        = (*RedisSink)(nil)
)

// RedisSinkOptions configures a RedisSink.
type RedisSinkOptions struct {
	// Key is the list holding JSON-encoded records.
	Key string
	// MaxLen caps the list; older records are trimmed.
	MaxLen int64
	// Service is stamped on every record.
	Service string
	// Timeout bounds each write.
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewRedisSink creates a sink writing to client.
func NewRedisSink(client *redis.Client, opts RedisSinkOptions) *RedisSink {
	if client == nil {
		panic("tracestore: redis client cannot be nil")
	}
	return &RedisSink{
		client:  client,
		key:     opts.Key,
		maxLen:  opts.MaxLen,
		service: opts.Service,
		writer: writer{
			backend: "redis",
			timeout: opts.Timeout,
			logger:  loggerOrDefault(opts.Logger),
		},
	}
}

// Trace pushes one record and trims the list in a single MULTI/EXEC.
func (s *RedisSink) Trace(category contract.Category, line string) {
	s.writer.write(category, line, func(ctx context.Context) error {
		payload, err := json.Marshal(newRecord(s.service, category, line))
		if err != nil {
			return fmt.Errorf("failed to encode trace record: %w", err)
		}

		_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, s.key, payload)
			pipe.LTrim(ctx, s.key, -s.maxLen, -1)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to append trace to %q: %w", s.key, err)
		}
		return nil
	})
}

// Recent returns up to limit records, newest first.
func (s *RedisSink) Recent(ctx context.Context, limit int64) ([]Record, error) {
	if limit <= 0 {
		return []Record{}, nil
	}

	raw, err := s.client.LRange(ctx, s.key, -limit, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read traces from %q: %w", s.key, err)
	}

	records := make([]Record, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var rec Record
		if err := json.Unmarshal([]byte(raw[i]), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode trace record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
