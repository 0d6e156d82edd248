package contract

// Assert fails with an assertion violation carrying the default message when cond is false.
func (c *Checker) Assert(cond bool) error {
	return c.Check(CategoryAssertion, cond, "", nil)
}

// AssertMsg fails with an assertion violation carrying msg when cond is false.
func (c *Checker) AssertMsg(cond bool, msg string) error {
	return c.Check(CategoryAssertion, cond, msg, nil)
}

// AssertWrap fails with an assertion violation carrying msg and cause when cond is false.
func (c *Checker) AssertWrap(cond bool, msg string, cause error) error {
	return c.Check(CategoryAssertion, cond, msg, cause)
}

// Assert checks the bound value against pred as an assertion.
func (v Value[T]) Assert(pred Predicate[T]) error {
	return v.check(CategoryAssertion, pred, "", nil)
}

// AssertMsg checks the bound value against pred as an assertion, failing with msg.
func (v Value[T]) AssertMsg(pred Predicate[T], msg string) error {
	return v.check(CategoryAssertion, pred, msg, nil)
}

// AssertWrap checks the bound value against pred as an assertion, failing with msg and cause.
func (v Value[T]) AssertWrap(pred Predicate[T], msg string, cause error) error {
	return v.check(CategoryAssertion, pred, msg, cause)
}

// Assert is Default().Assert.
func Assert(cond bool) error {
	return Default().Check(CategoryAssertion, cond, "", nil)
}

// AssertMsg is Default().AssertMsg.
func AssertMsg(cond bool, msg string) error {
	return Default().Check(CategoryAssertion, cond, msg, nil)
}

// AssertWrap is Default().AssertWrap.
func AssertWrap(cond bool, msg string, cause error) error {
	return Default().Check(CategoryAssertion, cond, msg, cause)
}

// AssertThat checks value against pred as an assertion on the default checker.
func AssertThat[T any](value T, pred Predicate[T]) error {
	return Of(Default(), value).Assert(pred)
}

// AssertThatMsg checks value against pred as an assertion on the default checker, failing with msg.
func AssertThatMsg[T any](value T, pred Predicate[T], msg string) error {
	return Of(Default(), value).AssertMsg(pred, msg)
}

// AssertThatWrap checks value against pred as an assertion on the default checker, failing with msg and cause.
func AssertThatWrap[T any](value T, pred Predicate[T], msg string, cause error) error {
	return Of(Default(), value).AssertWrap(pred, msg, cause)
}
