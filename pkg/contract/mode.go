package contract

import (
	"fmt"
	"strings"
)

// Mode selects what a Checker does with a violation.
type Mode int32

const (
	// ModeRaise returns the violation to the caller as an error.
	ModeRaise Mode = iota
	// ModeTrace writes the violation to the trace sink and lets execution continue.
	ModeTrace
	// ModePanic raises the violation with panic.
	ModePanic
)

// DefaultMode is the mode new checkers start in.
// It is ModeRaise unless the binary was built with the dbc_trace tag.
const DefaultMode = defaultMode

// ParseMode converts "raise", "trace" or "panic" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raise":
		return ModeRaise, nil
	case "trace":
		return ModeTrace, nil
	case "panic":
		return ModePanic, nil
	default:
		return 0, fmt.Errorf("unknown contract mode %q: must be one of raise, trace, panic", s)
	}
}

// String returns the textual form accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeRaise:
		return "raise"
	case ModeTrace:
		return "trace"
	case ModePanic:
		return "panic"
	default:
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModeRaise && m <= ModePanic
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid contract mode %d", int32(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Mode can be loaded from env vars.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
