package contract

import "fmt"

// Category identifies which kind of contract a check enforces.
// The set is closed.
type Category uint8

const (
	CategoryPrecondition Category = iota
	CategoryPostcondition
	CategoryInvariant
	CategoryAssertion
)

// Categories lists every category in declaration order.
var Categories = []Category{CategoryPrecondition, CategoryPostcondition, CategoryInvariant, CategoryAssertion}

// Label is the human-readable name used as the prefix of trace output.
func (c Category) Label() string {
	switch c {
	case CategoryPrecondition:
		return "Precondition"
	case CategoryPostcondition:
		return "Postcondition"
	case CategoryInvariant:
		return "Invariant"
	case CategoryAssertion:
		return "Assertion"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// DefaultMessage is the message carried by a violation when the caller supplied none.
func (c Category) DefaultMessage() string {
	return c.Label() + " failed."
}

// String returns the lower-case form, suitable for metric labels.
func (c Category) String() string {
	switch c {
	case CategoryPrecondition:
		return "precondition"
	case CategoryPostcondition:
		return "postcondition"
	case CategoryInvariant:
		return "invariant"
	case CategoryAssertion:
		return "assertion"
	default:
		return "unknown"
	}
}

// sentinel returns the errors.Is target for the category.
func (c Category) sentinel() error {
	switch c {
	case CategoryPrecondition:
		return ErrPrecondition
	case CategoryPostcondition:
		return ErrPostcondition
	case CategoryInvariant:
		return ErrInvariant
	case CategoryAssertion:
		return ErrAssertion
	default:
		return nil
	}
}
