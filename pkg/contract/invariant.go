package contract

// Invariant fails with an invariant violation carrying the default message when cond is false.
func (c *Checker) Invariant(cond bool) error {
	return c.Check(CategoryInvariant, cond, "", nil)
}

// InvariantMsg fails with an invariant violation carrying msg when cond is false.
func (c *Checker) InvariantMsg(cond bool, msg string) error {
	return c.Check(CategoryInvariant, cond, msg, nil)
}

// InvariantWrap fails with an invariant violation carrying msg and cause when cond is false.
func (c *Checker) InvariantWrap(cond bool, msg string, cause error) error {
	return c.Check(CategoryInvariant, cond, msg, cause)
}

// Invariant checks the bound value against pred as an invariant.
func (v Value[T]) Invariant(pred Predicate[T]) error {
	return v.check(CategoryInvariant, pred, "", nil)
}

// InvariantMsg checks the bound value against pred as an invariant, failing with msg.
func (v Value[T]) InvariantMsg(pred Predicate[T], msg string) error {
	return v.check(CategoryInvariant, pred, msg, nil)
}

// InvariantWrap checks the bound value against pred as an invariant, failing with msg and cause.
func (v Value[T]) InvariantWrap(pred Predicate[T], msg string, cause error) error {
	return v.check(CategoryInvariant, pred, msg, cause)
}

// Invariant is Default().Invariant.
func Invariant(cond bool) error {
	return Default().Check(CategoryInvariant, cond, "", nil)
}

// InvariantMsg is Default().InvariantMsg.
func InvariantMsg(cond bool, msg string) error {
	return Default().Check(CategoryInvariant, cond, msg, nil)
}

// InvariantWrap is Default().InvariantWrap.
func InvariantWrap(cond bool, msg string, cause error) error {
	return Default().Check(CategoryInvariant, cond, msg, cause)
}

// InvariantThat checks value against pred as an invariant on the default checker.
func InvariantThat[T any](value T, pred Predicate[T]) error {
	return Of(Default(), value).Invariant(pred)
}

// InvariantThatMsg checks value against pred as an invariant on the default checker, failing with msg.
func InvariantThatMsg[T any](value T, pred Predicate[T], msg string) error {
	return Of(Default(), value).InvariantMsg(pred, msg)
}

// InvariantThatWrap checks value against pred as an invariant on the default checker, failing with msg and cause.
func InvariantThatWrap[T any](value T, pred Predicate[T], msg string, cause error) error {
	return Of(Default(), value).InvariantWrap(pred, msg, cause)
}
