package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExponentNumeric(t *testing.T) {
	e := Num(0.5)
	assert.False(t, e.Symbolic())
	v, ok := e.Float()
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, "0.5", e.String())

	neg := e.Neg()
	v, _ = neg.Float()
	assert.Equal(t, -0.5, v)

	assert.True(t, Num(1).IsOne())
	assert.False(t, Num(2).IsOne())
	assert.Equal(t, "2", Num(2).String())
}

func TestExponentSymbolic(t *testing.T) {
	e := Sym("t")
	assert.True(t, e.Symbolic())
	_, ok := e.Float()
	assert.False(t, ok)
	assert.Equal(t, "t", e.String())
	assert.False(t, e.IsOne())

	neg := e.Neg()
	assert.True(t, neg.Symbolic())
	assert.Equal(t, "-t", neg.String())
	assert.Equal(t, e, neg.Neg())
}

func TestOperationString(t *testing.T) {
	a := NewQubit("a")
	b := NewQubit("b")

	assert.Equal(t, "X(a)", X(a).String())
	assert.Equal(t, "Z**0.125(a)", ZPow(a, Num(0.125)).String())
	assert.Equal(t, "CNOT(a, b)", CNOT(a, b).String())
	assert.Equal(t, "X**-t(a)", XPow(a, Sym("t").Neg()).String())
}
