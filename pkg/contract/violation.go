package contract

import (
	"errors"
	"log/slog"
)

// Sentinel errors for errors.Is matching.
// A *Violation matches ErrViolation and the sentinel of its own category.
var (
	// ErrViolation matches every contract failure regardless of category.
	ErrViolation = errors.New("contract violation")

	// ErrPrecondition matches violations caused by invalid caller input or state.
	ErrPrecondition = errors.New("precondition violation")

	// ErrPostcondition matches violations where an operation broke its own guarantee.
	ErrPostcondition = errors.New("postcondition violation")

	// ErrInvariant matches violations of internal state consistency.
	ErrInvariant = errors.New("invariant violation")

	// ErrAssertion matches generic assertion failures.
	ErrAssertion = errors.New("assertion violation")
)

// Violation is the error produced when a check's condition is false.
type Violation struct {
	// Category is the kind of contract that was broken.
	Category Category

	// Message explains why the contract is broken.
	// It holds the category's DefaultMessage when the caller supplied none.
	Message string

	// Cause is the underlying failure, if the caller supplied one.
	Cause error

	// Caller is the file:line of the check call site.
	Caller string

	explicit bool
}

func newViolation(cat Category, msg string, cause error) *Violation {
	v := &Violation{
		Category: cat,
		Message:  msg,
		Cause:    cause,
		Caller:   callSite(),
		explicit: msg != "",
	}
	if !v.explicit {
		v.Message = cat.DefaultMessage()
	}
	return v
}

// Error implements the error interface.
func (v *Violation) Error() string {
	if v.Cause != nil {
		return v.Message + ": " + v.Cause.Error()
	}
	return v.Message
}

// Unwrap exposes the nested cause to errors.Is and errors.As.
func (v *Violation) Unwrap() error {
	return v.Cause
}

// Is reports whether target is ErrViolation or the sentinel of v's category.
func (v *Violation) Is(target error) bool {
	return target == ErrViolation || target == v.Category.sentinel()
}

// TraceLine is the text written to a Sink in trace mode.
// Supplied messages are prefixed with the category label; default messages are used as-is.
func (v *Violation) TraceLine() string {
	if !v.explicit {
		return v.Message
	}
	return v.Category.Label() + ": " + v.Message
}

// LogValue implements slog.LogValuer.
func (v *Violation) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("category", v.Category.String()),
		slog.String("message", v.Message),
	}
	if v.Cause != nil {
		attrs = append(attrs, slog.String("cause", v.Cause.Error()))
	}
	if v.Caller != "" {
		attrs = append(attrs, slog.String("caller", v.Caller))
	}
	return slog.GroupValue(attrs...)
}

// AsViolation extracts the first *Violation in err's chain.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// CategoryOf returns the category of the first *Violation in err's chain.
func CategoryOf(err error) (Category, bool) {
	v, ok := AsViolation(err)
	if !ok {
		return 0, false
	}
	return v.Category, true
}

// IsClientError reports whether err is a precondition violation, i.e. the caller is at fault.
// Any other violation signals a defect in the callee.
func IsClientError(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
