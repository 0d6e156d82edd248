package contract

// Predicate reports whether value satisfies a contract.
type Predicate[T any] func(value T) bool

// Value binds a value to a Checker so it can be checked against predicates.
//
//	contract.Of(checker, amount).Require(func(a int) bool { return a > 0 })
type Value[T any] struct {
	checker *Checker
	value   T
}

// Of binds value to c. A nil c uses the process-wide default checker.
func Of[T any](c *Checker, value T) Value[T] {
	if c == nil {
		c = Default()
	}
	return Value[T]{checker: c, value: value}
}

// check evaluates pred and delegates to the boolean form.
// A panicking predicate is not recovered.
func (v Value[T]) check(cat Category, pred Predicate[T], msg string, cause error) error {
	return v.checker.Check(cat, pred(v.value), msg, cause)
}
