package contract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Sink receives trace output when a checker runs in ModeTrace.
// Implementations must be safe for concurrent use.
type Sink interface {
	// Trace records one formatted line, e.g. "Precondition: x must be > 0".
	Trace(category Category, line string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(category Category, line string)

// Trace calls f(category, line).
func (f SinkFunc) Trace(category Category, line string) {
	f(category, line)
}

// DiscardSink drops every line.
type DiscardSink struct{}

// Trace does nothing.
func (DiscardSink) Trace(Category, string) {}

// SlogSink writes trace lines to a structured logger.
type SlogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogSink creates a sink logging at Warn level.
// If logger is nil, slog.Default() is resolved on every write so later SetDefault calls apply.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger, level: slog.LevelWarn}
}

// WithLevel returns a copy of the sink logging at level.
func (s *SlogSink) WithLevel(level slog.Level) *SlogSink {
	return &SlogSink{logger: s.logger, level: level}
}

// Trace logs line with the category as an attribute.
func (s *SlogSink) Trace(category Category, line string) {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), s.level, line,
		slog.String("category", category.String()),
	)
}

// WriterSink writes one line per trace to an io.Writer.
// Write errors are ignored; trace output is best-effort.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Trace writes line followed by a newline.
func (s *WriterSink) Trace(_ Category, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, line)
}

// MultiSink fans a trace line out to every sink in order.
type MultiSink []Sink

// Trace forwards to each non-nil sink.
func (m MultiSink) Trace(category Category, line string) {
	for _, s := range m {
		if s != nil {
			s.Trace(category, line)
		}
	}
}
