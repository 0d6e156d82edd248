package contract

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

const modeCount = int(ModePanic) + 1

// Observer is notified about check outcomes, typically to record metrics.
// Implementations must be safe for concurrent use and must not block.
type Observer interface {
	// ObserveCheck is called for every evaluated check.
	ObserveCheck(category Category, passed bool)
	// ObserveViolation is called for every failed check, before the reporter runs.
	ObserveViolation(category Category, mode Mode)
}

type nopObserver struct{}

func (nopObserver) ObserveCheck(Category, bool)     {}
func (nopObserver) ObserveViolation(Category, Mode) {}

// Checker evaluates contracts and routes violations according to its Mode.
// A Checker is safe for concurrent use.
type Checker struct {
	mode      atomic.Int32
	reporters [modeCount]Reporter
	observer  Observer
}

// Option configures a Checker.
type Option func(*Checker)

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(c *Checker) {
		c.mode.Store(int32(m))
	}
}

// WithSink sets where trace-mode output goes.
func WithSink(sink Sink) Option {
	return func(c *Checker) {
		c.reporters[ModeTrace] = NewTraceReporter(sink)
	}
}

// WithObserver registers an observer for check outcomes.
func WithObserver(o Observer) Option {
	return func(c *Checker) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithReporter replaces the reporter used in mode m.
func WithReporter(m Mode, r Reporter) Option {
	return func(c *Checker) {
		if m.Valid() && r != nil {
			c.reporters[m] = r
		}
	}
}

// New creates a Checker in DefaultMode that traces to slog.Default().
func New(opts ...Option) *Checker {
	c := &Checker{
		reporters: [modeCount]Reporter{
			ModeRaise: RaiseReporter{},
			ModeTrace: NewTraceReporter(NewSlogSink(nil)),
			ModePanic: PanicReporter{},
		},
		observer: nopObserver{},
	}
	c.mode.Store(int32(DefaultMode))

	for _, opt := range opts {
		opt(c)
	}

	if !c.Mode().Valid() {
		panic(fmt.Sprintf("contract: invalid mode %d", c.mode.Load()))
	}
	return c
}

// Mode returns the current mode.
func (c *Checker) Mode() Mode {
	return Mode(c.mode.Load())
}

// SetMode switches the mode for all subsequent checks.
// Checks already running may observe either the old or the new mode.
// Panics if m is not a declared mode.
func (c *Checker) SetMode(m Mode) {
	if !m.Valid() {
		panic(fmt.Sprintf("contract: invalid mode %d", int32(m)))
	}
	c.mode.Store(int32(m))
}

// Check evaluates cond for the given category.
// An empty msg is replaced by the category's default message. cause may be nil.
func (c *Checker) Check(cat Category, cond bool, msg string, cause error) error {
	c.observer.ObserveCheck(cat, cond)
	if cond {
		return nil
	}

	mode := c.Mode()
	v := newViolation(cat, msg, cause)
	c.observer.ObserveViolation(cat, mode)

	return c.reporters[mode].Report(v)
}

// LogValue implements slog.LogValuer.
func (c *Checker) LogValue() slog.Value {
	return slog.GroupValue(slog.String("mode", c.Mode().String()))
}
