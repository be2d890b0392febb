package circuit

import (
	"strconv"
)

// Exponent is a gate exponent measured in half-turns. It is either a
// concrete number or a named symbolic placeholder that flows through
// decompositions unevaluated.
type Exponent struct {
	symbol  string
	negated bool
	value   float64
}

// Num returns a numeric exponent.
func Num(v float64) Exponent {
	return Exponent{value: v}
}

// Sym returns a symbolic exponent with the given name.
func Sym(name string) Exponent {
	return Exponent{symbol: name}
}

// Symbolic reports whether the exponent is a symbolic placeholder.
func (e Exponent) Symbolic() bool {
	return e.symbol != ""
}

// Float returns the numeric value. The second return is false for
// symbolic exponents.
func (e Exponent) Float() (float64, bool) {
	if e.Symbolic() {
		return 0, false
	}
	return e.value, true
}

// Neg returns the negated exponent. Symbolic exponents stay symbolic.
func (e Exponent) Neg() Exponent {
	if e.Symbolic() {
		return Exponent{symbol: e.symbol, negated: !e.negated}
	}
	return Exponent{value: -e.value}
}

// IsOne reports whether the exponent is the numeric value 1.
func (e Exponent) IsOne() bool {
	return !e.Symbolic() && e.value == 1
}

func (e Exponent) String() string {
	if e.Symbolic() {
		if e.negated {
			return "-" + e.symbol
		}
		return e.symbol
	}
	return strconv.FormatFloat(e.value, 'g', -1, 64)
}
