package contract

// Ensure fails with a postcondition violation carrying the default message when cond is false.
func (c *Checker) Ensure(cond bool) error {
	return c.Check(CategoryPostcondition, cond, "", nil)
}

// EnsureMsg fails with a postcondition violation carrying msg when cond is false.
func (c *Checker) EnsureMsg(cond bool, msg string) error {
	return c.Check(CategoryPostcondition, cond, msg, nil)
}

// EnsureWrap fails with a postcondition violation carrying msg and cause when cond is false.
func (c *Checker) EnsureWrap(cond bool, msg string, cause error) error {
	return c.Check(CategoryPostcondition, cond, msg, cause)
}

// Ensure checks the bound value against pred as a postcondition.
func (v Value[T]) Ensure(pred Predicate[T]) error {
	return v.check(CategoryPostcondition, pred, "", nil)
}

// EnsureMsg checks the bound value against pred as a postcondition, failing with msg.
func (v Value[T]) EnsureMsg(pred Predicate[T], msg string) error {
	return v.check(CategoryPostcondition, pred, msg, nil)
}

// EnsureWrap checks the bound value against pred as a postcondition, failing with msg and cause.
func (v Value[T]) EnsureWrap(pred Predicate[T], msg string, cause error) error {
	return v.check(CategoryPostcondition, pred, msg, cause)
}

// Ensure is Default().Ensure.
func Ensure(cond bool) error {
	return Default().Check(CategoryPostcondition, cond, "", nil)
}

// EnsureMsg is Default().EnsureMsg.
func EnsureMsg(cond bool, msg string) error {
	return Default().Check(CategoryPostcondition, cond, msg, nil)
}

// EnsureWrap is Default().EnsureWrap.
func EnsureWrap(cond bool, msg string, cause error) error {
	return Default().Check(CategoryPostcondition, cond, msg, cause)
}

// EnsureThat checks value against pred as a postcondition on the default checker.
func EnsureThat[T any](value T, pred Predicate[T]) error {
	return Of(Default(), value).Ensure(pred)
}

// EnsureThatMsg checks value against pred as a postcondition on the default checker, failing with msg.
func EnsureThatMsg[T any](value T, pred Predicate[T], msg string) error {
	return Of(Default(), value).EnsureMsg(pred, msg)
}

// EnsureThatWrap checks value against pred as a postcondition on the default checker, failing with msg and cause.
func EnsureThatWrap[T any](value T, pred Predicate[T], msg string, cause error) error {
	return Of(Default(), value).EnsureWrap(pred, msg, cause)
}
