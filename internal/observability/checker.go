package observability

import "context"

// Checker is a dependency verified by the readiness probe.
// Check must honor ctx so the probe answers within the configured timeout.
type Checker interface {
	// Name identifies the component, e.g. "redis" or "postgres".
	Name() string
	// Check returns nil when the component is usable.
	Check(ctx context.Context) error
}

// CheckerFunc adapts a named function to the Checker interface.
type CheckerFunc struct {
	ComponentName string
	Fn            func(ctx context.Context) error
}

// Name returns ComponentName.
func (c CheckerFunc) Name() string { return c.ComponentName }

// Check calls Fn.
func (c CheckerFunc) Check(ctx context.Context) error { return c.Fn(ctx) }
