package contract

// Require fails with a precondition violation carrying the default message when cond is false.
func (c *Checker) Require(cond bool) error {
	return c.Check(CategoryPrecondition, cond, "", nil)
}

// RequireMsg fails with a precondition violation carrying msg when cond is false.
func (c *Checker) RequireMsg(cond bool, msg string) error {
	return c.Check(CategoryPrecondition, cond, msg, nil)
}

// RequireWrap fails with a precondition violation carrying msg and cause when cond is false.
func (c *Checker) RequireWrap(cond bool, msg string, cause error) error {
	return c.Check(CategoryPrecondition, cond, msg, cause)
}

// Require checks the bound value against pred as a precondition.
func (v Value[T]) Require(pred Predicate[T]) error {
	return v.check(CategoryPrecondition, pred, "", nil)
}

// RequireMsg checks the bound value against pred as a precondition, failing with msg.
func (v Value[T]) RequireMsg(pred Predicate[T], msg string) error {
	return v.check(CategoryPrecondition, pred, msg, nil)
}

// RequireWrap checks the bound value against pred as a precondition, failing with msg and cause.
func (v Value[T]) RequireWrap(pred Predicate[T], msg string, cause error) error {
	return v.check(CategoryPrecondition, pred, msg, cause)
}

// Require is Default().Require.
func Require(cond bool) error {
	return Default().Check(CategoryPrecondition, cond, "", nil)
}

// RequireMsg is Default().RequireMsg.
func RequireMsg(cond bool, msg string) error {
	return Default().Check(CategoryPrecondition, cond, msg, nil)
}

// RequireWrap is Default().RequireWrap.
func RequireWrap(cond bool, msg string, cause error) error {
	return Default().Check(CategoryPrecondition, cond, msg, cause)
}

// RequireThat checks value against pred as a precondition on the default checker.
func RequireThat[T any](value T, pred Predicate[T]) error {
	return Of(Default(), value).Require(pred)
}

// RequireThatMsg checks value against pred as a precondition on the default checker, failing with msg.
func RequireThatMsg[T any](value T, pred Predicate[T], msg string) error {
	return Of(Default(), value).RequireMsg(pred, msg)
}

// RequireThatWrap checks value against pred as a precondition on the default checker, failing with msg and cause.
func RequireThatWrap[T any](value T, pred Predicate[T], msg string, cause error) error {
	return Of(Default(), value).RequireWrap(pred, msg, cause)
}
