package operator

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/aristath/fermisim/pkg/circuit"
)

// zLikeGate is Z**theta defined through its eigen components:
// eigenvalue 0 on |0> and eigenvalue 1 on |1>.
type zLikeGate struct {
	exponent circuit.Exponent
}

func (g zLikeGate) EigenComponents() []EigenComponent {
	p0 := mat.NewCDense(2, 2, nil)
	p0.Set(0, 0, 1)
	p1 := mat.NewCDense(2, 2, nil)
	p1.Set(1, 1, 1)
	return []EigenComponent{
		{Exponent: 0, Projector: p0},
		{Exponent: 1, Projector: p1},
	}
}

func (g zLikeGate) CanonicalExponentPeriod() (float64, bool) { return 2, true }
func (g zLikeGate) Exponent() circuit.Exponent               { return g.exponent }

func TestUnitaryFromEigenComponents(t *testing.T) {
	u, err := Unitary(zLikeGate{exponent: circuit.Num(0.5)})
	require.NoError(t, err)

	// Z**0.5 = diag(1, i).
	assert.InDelta(t, 0, cmplx.Abs(u.At(0, 0)-1), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(u.At(1, 1)-complex(0, 1)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(u.At(0, 1)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(u.At(1, 0)), 1e-12)
}

func TestUnitarySymbolicExponent(t *testing.T) {
	_, err := Unitary(zLikeGate{exponent: circuit.Sym("t")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbolic")
}

func TestCanonicalizeExponent(t *testing.T) {
	tests := []struct {
		name     string
		exponent float64
		period   float64
		want     float64
	}{
		{"in range", 1.25, 2, 1.25},
		{"one period up", 3, 2, 1},
		{"negative", -0.5, 2, 1.5},
		{"exact period", 2, 2, 0},
		{"no period", 7, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CanonicalizeExponent(tt.exponent, tt.period), 1e-12)
		})
	}
}

func TestEqualUpToGlobalPhase(t *testing.T) {
	a, err := Unitary(zLikeGate{exponent: circuit.Num(0.3)})
	require.NoError(t, err)

	// Multiply by a global phase.
	phase := cmplx.Exp(complex(0, 1.234))
	b := mat.NewCDense(2, 2, nil)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			b.Set(r, c, phase*a.At(r, c))
		}
	}

	assert.True(t, EqualUpToGlobalPhase(a, b, 1e-9))
	assert.False(t, Equal(a, b, 1e-9))

	other, err := Unitary(zLikeGate{exponent: circuit.Num(0.7)})
	require.NoError(t, err)
	assert.False(t, EqualUpToGlobalPhase(a, other, 1e-9))
}
