package contract_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaeljc/dbc/pkg/contract"
)

// useDefault installs c as the process-wide checker for the duration of the test.
// Tests calling it must not run in parallel.
func useDefault(t *testing.T, c *contract.Checker) {
	t.Helper()

	previous := contract.Default()
	contract.SetDefault(c)
	t.Cleanup(func() { contract.SetDefault(previous) })
}

const preconditionMessage = "fractionalPercentage must be > 0"
const postconditionMessage = "out of range "

func convertToPercentage(fraction float64) (string, error) {
	if err := contract.RequireMsg(fraction > 0, preconditionMessage); err != nil {
		return "", err
	}

	converted := fraction * 100

	if err := contract.EnsureMsg(converted >= 0 && converted <= 100, fmt.Sprintf("%s%v", postconditionMessage, converted)); err != nil {
		return "", err
	}

	return fmt.Sprintf("%v%%", math.Round(converted)), nil
}

func TestDefault_StartsInDefaultMode(t *testing.T) {
	assert.Equal(t, contract.DefaultMode, contract.New().Mode())
}

func TestDefault_PreconditionAndPostcondition(t *testing.T) {
	useDefault(t, contract.New(contract.WithMode(contract.ModeRaise)))

	t.Run("Should get past precondition and postcondition", func(t *testing.T) {
		got, err := convertToPercentage(0.2)
		require.NoError(t, err)
		assert.Equal(t, "20%", got)
	})

	t.Run("Should enforce the precondition", func(t *testing.T) {
		_, err := convertToPercentage(-0.2)
		assert.ErrorIs(t, err, contract.ErrPrecondition)
		assert.Contains(t, err.Error(), preconditionMessage)
	})

	t.Run("Should enforce the postcondition", func(t *testing.T) {
		_, err := convertToPercentage(2)
		assert.ErrorIs(t, err, contract.ErrPostcondition)
		assert.Contains(t, err.Error(), "out of range 200")
	})
}

func TestDefault_PackageFunctions(t *testing.T) {
	useDefault(t, contract.New(contract.WithMode(contract.ModeRaise)))

	inner := errors.New("format")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
		cause    error
	}{
		{"Require", contract.Require(false), contract.ErrPrecondition, "Precondition failed.", nil},
		{"RequireMsg", contract.RequireMsg(false, "m"), contract.ErrPrecondition, "m", nil},
		{"RequireWrap", contract.RequireWrap(false, "m", inner), contract.ErrPrecondition, "m", inner},
		{"RequireThat", contract.RequireThat(-1, positive), contract.ErrPrecondition, "Precondition failed.", nil},
		{"RequireThatMsg", contract.RequireThatMsg(-1, positive, "m"), contract.ErrPrecondition, "m", nil},
		{"RequireThatWrap", contract.RequireThatWrap(-1, positive, "m", inner), contract.ErrPrecondition, "m", inner},
		{"Ensure", contract.Ensure(false), contract.ErrPostcondition, "Postcondition failed.", nil},
		{"EnsureMsg", contract.EnsureMsg(false, "m"), contract.ErrPostcondition, "m", nil},
		{"EnsureWrap", contract.EnsureWrap(false, "m", inner), contract.ErrPostcondition, "m", inner},
		{"EnsureThat", contract.EnsureThat(-1, positive), contract.ErrPostcondition, "Postcondition failed.", nil},
		{"EnsureThatMsg", contract.EnsureThatMsg(-1, positive, "m"), contract.ErrPostcondition, "m", nil},
		{"EnsureThatWrap", contract.EnsureThatWrap(-1, positive, "m", inner), contract.ErrPostcondition, "m", inner},
		{"Invariant", contract.Invariant(false), contract.ErrInvariant, "Invariant failed.", nil},
		{"InvariantMsg", contract.InvariantMsg(false, "m"), contract.ErrInvariant, "m", nil},
		{"InvariantWrap", contract.InvariantWrap(false, "m", inner), contract.ErrInvariant, "m", inner},
		{"InvariantThat", contract.InvariantThat(-1, positive), contract.ErrInvariant, "Invariant failed.", nil},
		{"InvariantThatMsg", contract.InvariantThatMsg(-1, positive, "m"), contract.ErrInvariant, "m", nil},
		{"InvariantThatWrap", contract.InvariantThatWrap(-1, positive, "m", inner), contract.ErrInvariant, "m", inner},
		{"Assert", contract.Assert(false), contract.ErrAssertion, "Assertion failed.", nil},
		{"AssertMsg", contract.AssertMsg(false, "m"), contract.ErrAssertion, "m", nil},
		{"AssertWrap", contract.AssertWrap(false, "m", inner), contract.ErrAssertion, "m", inner},
		{"AssertThat", contract.AssertThat(-1, positive), contract.ErrAssertion, "Assertion failed.", nil},
		{"AssertThatMsg", contract.AssertThatMsg(-1, positive, "m"), contract.ErrAssertion, "m", nil},
		{"AssertThatWrap", contract.AssertThatWrap(-1, positive, "m", inner), contract.ErrAssertion, "m", inner},
	}

	for _, tt := range tests {
		t.Run("Should fail "+tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.ErrorIs(t, tt.err, tt.sentinel)

			v, ok := contract.AsViolation(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.message, v.Message)
			assert.Equal(t, tt.cause, v.Cause)
		})
	}
}

func TestDefault_SettingTraceModeShouldNotFail(t *testing.T) {
	sink := &recordingSink{}
	useDefault(t, contract.New(contract.WithSink(sink)))

	contract.SetMode(contract.ModeTrace)
	assert.Equal(t, contract.ModeTrace, contract.CurrentMode())

	assert.NotPanics(t, func() {
		assert.NoError(t, contract.Require(false))
		assert.NoError(t, contract.RequireThatMsg(-1, func(i int) bool { return i > 0 }, "x must be > 0"))
	})
	assert.Equal(t, []string{"Precondition failed.", "Precondition: x must be > 0"}, sink.Lines())

	contract.SetMode(contract.ModeRaise)
	assert.Error(t, contract.Require(false))
}

func TestDefault_OfNilUsesDefault(t *testing.T) {
	useDefault(t, contract.New(contract.WithMode(contract.ModeRaise)))

	err := contract.Of[string](nil, "").AssertMsg(func(s string) bool { return s != "" }, "name required")

	assert.ErrorIs(t, err, contract.ErrAssertion)
}

func TestDefault_SetDefaultRejectsNil(t *testing.T) {
	assert.Panics(t, func() { contract.SetDefault(nil) })
	assert.NotNil(t, contract.Default())
}
