package contract_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaeljc/dbc/pkg/contract"
)

func raise(t *testing.T, fn func(c *contract.Checker) error) *contract.Violation {
	t.Helper()

	err := fn(contract.New(contract.WithMode(contract.ModeRaise)))
	v, ok := contract.AsViolation(err)
	require.True(t, ok, "expected violation, got %v", err)
	return v
}

func TestViolation_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(c *contract.Checker) error
		want string
	}{
		{
			name: "Should render the default message",
			fn:   func(c *contract.Checker) error { return c.Require(false) },
			want: "Precondition failed.",
		},
		{
			name: "Should render the supplied message",
			fn:   func(c *contract.Checker) error { return c.EnsureMsg(false, "out of range 200") },
			want: "out of range 200",
		},
		{
			name: "Should append the cause",
			fn: func(c *contract.Checker) error {
				return c.InvariantWrap(false, "ledger unbalanced", errors.New("sum mismatch"))
			},
			want: "ledger unbalanced: sum mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, raise(t, tt.fn).Error())
		})
	}
}

func TestViolation_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	v := raise(t, func(c *contract.Checker) error { return c.RequireMsg(false, "id required") })
	wrapped := fmt.Errorf("create order: %w", v)

	assert.ErrorIs(t, wrapped, contract.ErrViolation)
	assert.ErrorIs(t, wrapped, contract.ErrPrecondition)
	assert.True(t, contract.IsClientError(wrapped))

	cat, ok := contract.CategoryOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, contract.CategoryPrecondition, cat)
}

func TestViolation_Classification(t *testing.T) {
	t.Parallel()

	t.Run("Should treat only preconditions as client errors", func(t *testing.T) {
		assert.True(t, contract.IsClientError(raise(t, func(c *contract.Checker) error { return c.Require(false) })))
		assert.False(t, contract.IsClientError(raise(t, func(c *contract.Checker) error { return c.Ensure(false) })))
		assert.False(t, contract.IsClientError(raise(t, func(c *contract.Checker) error { return c.Invariant(false) })))
		assert.False(t, contract.IsClientError(raise(t, func(c *contract.Checker) error { return c.Assert(false) })))
	})

	t.Run("Should not classify foreign errors", func(t *testing.T) {
		err := errors.New("network down")

		_, ok := contract.AsViolation(err)
		assert.False(t, ok)
		_, ok = contract.CategoryOf(err)
		assert.False(t, ok)
		assert.False(t, contract.IsClientError(err))
		assert.False(t, contract.IsClientError(nil))
	})
}

func TestViolation_TraceLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Assertion failed.",
		raise(t, func(c *contract.Checker) error { return c.Assert(false) }).TraceLine())
	assert.Equal(t, "Assertion: cache warm",
		raise(t, func(c *contract.Checker) error { return c.AssertMsg(false, "cache warm") }).TraceLine())
}

func TestViolation_LogValue(t *testing.T) {
	t.Parallel()

	// Arrange
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	v := raise(t, func(c *contract.Checker) error {
		return c.RequireWrap(false, "bad input", errors.New("parse failed"))
	})

	// Act
	logger.Error("contract broken", slog.Any("violation", v))

	// Assert
	out := buf.String()
	assert.Contains(t, out, "violation.category=precondition")
	assert.Contains(t, out, `violation.message="bad input"`)
	assert.Contains(t, out, `violation.cause="parse failed"`)
	assert.Contains(t, out, "violation.caller=violation_test.go:")
}
