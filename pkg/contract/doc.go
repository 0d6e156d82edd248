// Package contract provides Design-by-Contract checks evaluated at call time.
//
// Four check categories are available, each in a boolean form and a predicate form:
//
//   - Precondition (Require): validates caller-supplied input or state.
//   - Postcondition (Ensure): validates what an operation produced before it returns.
//   - Invariant: validates that persistent internal state is still consistent.
//   - Assertion (Assert): generic contract with no specific role.
//
// A failed check produces a *Violation tagged with its Category. What happens next depends on
// the Checker's Mode:
//
//   - ModeRaise (default): the violation is returned as an error.
//   - ModeTrace: the violation is written to a Sink as "<Category>: <message>" and the check
//     returns nil. Intended for development builds only.
//   - ModePanic: the violation is raised with panic.
//
// Usage:
//
//	func ConvertToPercentage(fraction float64) (string, error) {
//		if err := contract.RequireMsg(fraction > 0, "fraction must be > 0"); err != nil {
//			return "", err
//		}
//		v := fraction * 100
//		if err := contract.EnsureMsg(v >= 0 && v <= 100, fmt.Sprintf("out of range %v", v)); err != nil {
//			return "", err
//		}
//		return fmt.Sprintf("%.0f%%", v), nil
//	}
//
// Callers can match any contract failure with errors.Is(err, contract.ErrViolation), or a single
// category with errors.Is(err, contract.ErrPrecondition).
//
// The package-level functions use a process-wide default Checker. Its mode lives in an atomic
// cell, so concurrent SetMode calls never tear, but a check running while the mode flips may see
// either value. Set the mode once at startup, or build a dedicated Checker with New.
//
// Building with the "dbc_trace" tag makes ModeTrace the compiled default.
package contract
