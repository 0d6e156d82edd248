package tracestore

import (
	"fmt"
	"time"

	"github.com/maypok86/otter"
	"github.com/spaolacci/murmur3"

	"github.com/rafaeljc/dbc/internal/observability"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// DedupeSink forwards a trace line only if the same category and line were
// not forwarded within the window. A hot loop violating one contract
// produces one line per window instead of one per iteration.
type DedupeSink struct {
	next contract.Sink
	seen otter.Cache[uint64, struct{}]
}

var _ contract.Sink = (*DedupeSink)(nil)

// NewDedupeSink wraps next. capacity bounds the number of remembered lines;
// when it is exceeded the oldest entries are evicted and may repeat early.
func NewDedupeSink(next contract.Sink, window time.Duration, capacity int) (*DedupeSink, error) {
	if next == nil {
		return nil, fmt.Errorf("dedupe sink requires a downstream sink")
	}
	if window <= 0 {
		return nil, fmt.Errorf("dedupe window must be positive, got %s", window)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("dedupe capacity must be positive, got %d", capacity)
	}

	seen, err := otter.MustBuilder[uint64, struct{}](capacity).
		WithTTL(window).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build dedupe cache: %w", err)
	}

	return &DedupeSink{next: next, seen: seen}, nil
}

// Trace forwards the line unless it is a repeat inside the window.
func (s *DedupeSink) Trace(category contract.Category, line string) {
	if !s.seen.SetIfAbsent(dedupeKey(category, line), struct{}{}) {
		observability.TraceSuppressedTotal.Inc()
		return
	}
	s.next.Trace(category, line)
}

// Close stops the cache's background goroutines.
func (s *DedupeSink) Close() {
	s.seen.Close()
}

// dedupeKey hashes the category byte followed by the line.
func dedupeKey(category contract.Category, line string) uint64 {
	h := murmur3.New64()
	_, _ = h.Write([]byte{byte(category)})
	_, _ = h.Write([]byte(line))
	return h.Sum64()
}
