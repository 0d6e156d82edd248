package contract_test

import (
	"sync"

	"github.com/rafaeljc/dbc/pkg/contract"
)

// recordingSink captures trace output for assertions.
type recordingSink struct {
	mu    sync.Mutex
	lines []string
	cats  []contract.Category
}

func (s *recordingSink) Trace(category contract.Category, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	s.cats = append(s.cats, category)
}

func (s *recordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// recordingObserver counts check outcomes per category.
type recordingObserver struct {
	mu         sync.Mutex
	passed     map[contract.Category]int
	failed     map[contract.Category]int
	violations map[contract.Mode]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		passed:     make(map[contract.Category]int),
		failed:     make(map[contract.Category]int),
		violations: make(map[contract.Mode]int),
	}
}

func (o *recordingObserver) ObserveCheck(category contract.Category, passed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if passed {
		o.passed[category]++
	} else {
		o.failed[category]++
	}
}

func (o *recordingObserver) ObserveViolation(_ contract.Category, mode contract.Mode) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.violations[mode]++
}

var sentinels = map[contract.Category]error{
	contract.CategoryPrecondition:  contract.ErrPrecondition,
	contract.CategoryPostcondition: contract.ErrPostcondition,
	contract.CategoryInvariant:     contract.ErrInvariant,
	contract.CategoryAssertion:     contract.ErrAssertion,
}

// positive is the predicate used by the predicate forms: valueFor(cond) satisfies it iff cond.
var positive contract.Predicate[int] = func(i int) bool { return i > 0 }

func valueFor(cond bool) int {
	if cond {
		return 1
	}
	return -1
}

// categoryAPI groups the six check signatures of one category.
type categoryAPI struct {
	category contract.Category
	plain    func(*contract.Checker, bool) error
	msg      func(*contract.Checker, bool, string) error
	wrap     func(*contract.Checker, bool, string, error) error
	pred     func(contract.Value[int], contract.Predicate[int]) error
	predMsg  func(contract.Value[int], contract.Predicate[int], string) error
	predWrap func(contract.Value[int], contract.Predicate[int], string, error) error
}

var categoryAPIs = []categoryAPI{
	{
		category: contract.CategoryPrecondition,
		plain:    (*contract.Checker).Require,
		msg:      (*contract.Checker).RequireMsg,
		wrap:     (*contract.Checker).RequireWrap,
		pred:     contract.Value[int].Require,
		predMsg:  contract.Value[int].RequireMsg,
		predWrap: contract.Value[int].RequireWrap,
	},
	{
		category: contract.CategoryPostcondition,
		plain:    (*contract.Checker).Ensure,
		msg:      (*contract.Checker).EnsureMsg,
		wrap:     (*contract.Checker).EnsureWrap,
		pred:     contract.Value[int].Ensure,
		predMsg:  contract.Value[int].EnsureMsg,
		predWrap: contract.Value[int].EnsureWrap,
	},
	{
		category: contract.CategoryInvariant,
		plain:    (*contract.Checker).Invariant,
		msg:      (*contract.Checker).InvariantMsg,
		wrap:     (*contract.Checker).InvariantWrap,
		pred:     contract.Value[int].Invariant,
		predMsg:  contract.Value[int].InvariantMsg,
		predWrap: contract.Value[int].InvariantWrap,
	},
	{
		category: contract.CategoryAssertion,
		plain:    (*contract.Checker).Assert,
		msg:      (*contract.Checker).AssertMsg,
		wrap:     (*contract.Checker).AssertWrap,
		pred:     contract.Value[int].Assert,
		predMsg:  contract.Value[int].AssertMsg,
		predWrap: contract.Value[int].AssertWrap,
	},
}

// checkForm is one call signature with a uniform shape.
type checkForm struct {
	name     string
	hasMsg   bool
	hasCause bool
	call     func(c *contract.Checker, cond bool, msg string, cause error) error
}

func (a categoryAPI) forms() []checkForm {
	return []checkForm{
		{"bool", false, false, func(c *contract.Checker, cond bool, _ string, _ error) error {
			return a.plain(c, cond)
		}},
		{"bool+message", true, false, func(c *contract.Checker, cond bool, msg string, _ error) error {
			return a.msg(c, cond, msg)
		}},
		{"bool+message+cause", true, true, func(c *contract.Checker, cond bool, msg string, cause error) error {
			return a.wrap(c, cond, msg, cause)
		}},
		{"predicate", false, false, func(c *contract.Checker, cond bool, _ string, _ error) error {
			return a.pred(contract.Of(c, valueFor(cond)), positive)
		}},
		{"predicate+message", true, false, func(c *contract.Checker, cond bool, msg string, _ error) error {
			return a.predMsg(contract.Of(c, valueFor(cond)), positive, msg)
		}},
		{"predicate+message+cause", true, true, func(c *contract.Checker, cond bool, msg string, cause error) error {
			return a.predWrap(contract.Of(c, valueFor(cond)), positive, msg, cause)
		}},
	}
}

// recoverViolation runs fn and returns what it panicked with, if anything.
func recoverViolation(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}
