//go:build !dbc_trace

package contract

const defaultMode = ModeRaise
