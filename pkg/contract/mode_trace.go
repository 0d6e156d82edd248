//go:build dbc_trace

package contract

// Trace builds log violations instead of failing.
const defaultMode = ModeTrace
