package circuit

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func matricesClose(t *testing.T, want [][]complex128, got *mat.CDense, tol float64) {
	t.Helper()
	rows, cols := got.Dims()
	require.Equal(t, len(want), rows)
	require.Equal(t, len(want[0]), cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cmplx.Abs(want[r][c]-got.At(r, c)) > tol {
				t.Fatalf("entry (%d, %d) = %v, want %v", r, c, got.At(r, c), want[r][c])
			}
		}
	}
}

func TestSingleQubitGateUnitaries(t *testing.T) {
	i := complex(0, 1)

	tests := []struct {
		name string
		op   func(Qubit) Operation
		want [][]complex128
	}{
		{
			name: "X",
			op:   X,
			want: [][]complex128{{0, 1}, {1, 0}},
		},
		{
			name: "Z",
			op:   Z,
			want: [][]complex128{{1, 0}, {0, -1}},
		},
		{
			name: "X**0.5",
			op:   func(q Qubit) Operation { return XPow(q, Num(0.5)) },
			want: [][]complex128{{(1 + i) / 2, (1 - i) / 2}, {(1 - i) / 2, (1 + i) / 2}},
		},
		{
			name: "Z**0.125",
			op:   func(q Qubit) Operation { return ZPow(q, Num(0.125)) },
			want: [][]complex128{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/8))}},
		},
		{
			name: "Z**-0.125",
			op:   func(q Qubit) Operation { return ZPow(q, Num(-0.125)) },
			want: [][]complex128{{1, 0}, {0, cmplx.Exp(complex(0, -math.Pi/8))}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegister(1)
			u, err := Unitary(reg, []Operation{tt.op(reg[0])})
			require.NoError(t, err)
			matricesClose(t, tt.want, u, 1e-12)
		})
	}
}

func TestXPowPeriodTwo(t *testing.T) {
	reg := NewRegister(1)
	a, err := Unitary(reg, []Operation{XPow(reg[0], Num(0.3))})
	require.NoError(t, err)
	b, err := Unitary(reg, []Operation{XPow(reg[0], Num(2.3))})
	require.NoError(t, err)

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.InDelta(t, 0, cmplx.Abs(a.At(r, c)-b.At(r, c)), 1e-12)
		}
	}
}

func TestBigEndianConvention(t *testing.T) {
	// Qubit 0 is the most significant bit: X on the last qubit of a
	// four-qubit register maps |0000> to |0001>, X on the first maps
	// it to |1000>.
	reg := NewRegister(4)

	u, err := Unitary(reg, []Operation{X(reg[3])})
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(u.At(1, 0)-1), 1e-12)

	u, err = Unitary(reg, []Operation{X(reg[0])})
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(u.At(8, 0)-1), 1e-12)
}

func TestCNOTUnitary(t *testing.T) {
	reg := NewRegister(2)

	// Control first: |10> -> |11>.
	u, err := Unitary(reg, []Operation{CNOT(reg[0], reg[1])})
	require.NoError(t, err)
	matricesClose(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}, u, 1e-12)

	// Reversed qubit order: control is the least significant bit, so
	// |01> -> |11>.
	u, err = Unitary(reg, []Operation{CNOT(reg[1], reg[0])})
	require.NoError(t, err)
	matricesClose(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}, u, 1e-12)
}

func TestSWAPAndCZUnitaries(t *testing.T) {
	reg := NewRegister(2)

	u, err := Unitary(reg, []Operation{SWAP(reg[0], reg[1])})
	require.NoError(t, err)
	matricesClose(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}, u, 1e-12)

	u, err = Unitary(reg, []Operation{CZ(reg[0], reg[1])})
	require.NoError(t, err)
	matricesClose(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	}, u, 1e-12)
}

func TestUnitarySymbolicExponentFails(t *testing.T) {
	reg := NewRegister(1)
	_, err := Unitary(reg, []Operation{XPow(reg[0], Sym("t"))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbolic")
}

func TestUnitaryUnknownQubitFails(t *testing.T) {
	reg := NewRegister(2)
	stray := NewQubit("stray")
	_, err := Unitary(reg, []Operation{X(stray)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in register")
}

func TestApplyOpsDimensionMismatch(t *testing.T) {
	reg := NewRegister(2)
	state := make([]complex128, 3)
	err := ApplyOps(state, reg, nil)
	require.Error(t, err)
}
