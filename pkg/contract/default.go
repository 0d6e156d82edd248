package contract

import "sync/atomic"

var defaultChecker atomic.Pointer[Checker]

func init() {
	defaultChecker.Store(New())
}

// Default returns the process-wide checker used by the package-level functions.
func Default() *Checker {
	return defaultChecker.Load()
}

// SetDefault replaces the process-wide checker. Panics if c is nil.
func SetDefault(c *Checker) {
	if c == nil {
		panic("contract: default checker cannot be nil")
	}
	defaultChecker.Store(c)
}

// SetMode switches the mode of the default checker.
func SetMode(m Mode) {
	Default().SetMode(m)
}

// CurrentMode returns the mode of the default checker.
func CurrentMode() Mode {
	return Default().Mode()
}
