// Package percent converts fractions to whole-number percentage strings,
// guarded by contracts on its input and output.
package percent

import (
	"fmt"
	"math"

	"github.com/rafaeljc/dbc/pkg/contract"
)

const (
	// PreconditionMessage is reported when the fraction is not positive.
	PreconditionMessage = "fraction must be > 0"
	// PostconditionMessage prefixes the converted value when it leaves [0, 100].
	PostconditionMessage = "out of range "
)

func positive(f float64) bool { return f > 0 }

// Convert returns fraction*100 rounded to a whole number with a "%" suffix,
// e.g. 0.2 → "20%". The fraction must be positive and the result must not
// exceed 100. With c in trace mode a violation is reported and the
// conversion still completes, so 2 yields "200%". A nil c uses contract.Default().
func Convert(c *contract.Checker, fraction float64) (string, error) {
	if err := contract.Of(c, fraction).RequireMsg(positive, PreconditionMessage); err != nil {
		return "", err
	}

	converted := fraction * 100

	inRange := converted >= 0 && converted <= 100
	if err := checker(c).EnsureMsg(inRange, PostconditionMessage+formatValue(converted)); err != nil {
		return "", err
	}

	return formatValue(math.Round(converted)) + "%", nil
}

func checker(c *contract.Checker) *contract.Checker {
	if c == nil {
		return contract.Default()
	}
	return c
}

// formatValue prints integral values without a fraction part.
func formatValue(v float64) string {
	return fmt.Sprintf("%v", v)
}
