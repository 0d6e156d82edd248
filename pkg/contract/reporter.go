package contract

// Reporter decides what a failed check does with its violation.
// The returned error is what the check returns to its caller.
type Reporter interface {
	Report(v *Violation) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(v *Violation) error

// Report calls f(v).
func (f ReporterFunc) Report(v *Violation) error {
	return f(v)
}

// RaiseReporter hands the violation back to the caller.
type RaiseReporter struct{}

// Report returns v.
func (RaiseReporter) Report(v *Violation) error {
	return v
}

// TraceReporter writes the violation to a Sink and swallows it.
type TraceReporter struct {
	Sink Sink
}

// NewTraceReporter creates a TraceReporter. A nil sink discards output.
func NewTraceReporter(sink Sink) *TraceReporter {
	if sink == nil {
		sink = DiscardSink{}
	}
	return &TraceReporter{Sink: sink}
}

// Report writes v.TraceLine() to the sink and returns nil.
func (r *TraceReporter) Report(v *Violation) error {
	r.Sink.Trace(v.Category, v.TraceLine())
	return nil
}

// PanicReporter raises the violation with panic.
// Recover it with AsViolation(recovered.(error)) or a type assertion to *Violation.
type PanicReporter struct{}

// Report panics with v.
func (PanicReporter) Report(v *Violation) error {
	panic(v)
}
