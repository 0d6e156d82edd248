// Package tracestore persists trace-mode contract output to shared backends
// so violations from every replica can be inspected in one place.
package tracestore

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rafaeljc/dbc/internal/observability"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// Record is one persisted trace line.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Category   string    `json:"category"`
	Line       string    `json:"line"`
	Service    string    `json:"service"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Reader lists the most recent records, newest first.
type Reader interface {
	Recent(ctx context.Context, limit int64) ([]Record, error)
}

// newRecord stamps a trace line with an ID and the current UTC time.
func newRecord(service string, category contract.Category, line string) Record {
	return Record{
		ID:         uuid.New(),
		Category:   category.String(),
		Line:       line,
		Service:    service,
		RecordedAt: time.Now().UTC(),
	}
}

// writer is the shared write path of the backend sinks.
// contract.Sink has no error return, so failures are logged and counted.
type writer struct {
	backend string
	timeout time.Duration
	logger  *slog.Logger
}

func (w writer) write(category contract.Category, line string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	observability.TraceWriteDuration.WithLabelValues(w.backend).Observe(time.Since(start).Seconds())

	if err != nil {
		observability.TraceWritesTotal.WithLabelValues(w.backend, "error").Inc()
		w.logger.Error("failed to persist contract trace",
			slog.String("sink", w.backend),
			slog.String("category", category.String()),
			slog.String("line", line),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.TraceWritesTotal.WithLabelValues(w.backend, "success").Inc()
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
