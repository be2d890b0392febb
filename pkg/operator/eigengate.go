// Package operator implements the generic eigen-operator mechanism:
// a gate defined by (eigenvalue exponent, projector) pairs gets its
// unitary, exponent canonicalization and operator equality derived
// here once, instead of per concrete gate.
package operator

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/fermisim/pkg/circuit"
)

// EigenComponent is one (eigenvalue exponent, projector) pair. The
// projectors of a gate must be mutually orthogonal, real-symmetric,
// and sum to the identity over the gate's state space.
type EigenComponent struct {
	// Exponent is the eigenvalue exponent lambda; the component
	// contributes exp(i*pi*lambda*theta) * Projector to the gate
	// raised to theta.
	Exponent  float64
	Projector *mat.CDense
}

// EigenGate is a unitary defined by its eigen-decomposition rather
// than a raw matrix.
type EigenGate interface {
	EigenComponents() []EigenComponent

	// CanonicalExponentPeriod returns the period of the gate's
	// exponent, if any: exponents differing by a multiple of the
	// period produce the identical operator.
	CanonicalExponentPeriod() (float64, bool)

	// Exponent returns the gate's stored exponent theta.
	Exponent() circuit.Exponent
}

// Unitary computes sum_i exp(i*pi*lambda_i*theta) * P_i for the
// gate's stored exponent. Fails for symbolic exponents.
func Unitary(g EigenGate) (*mat.CDense, error) {
	theta, ok := g.Exponent().Float()
	if !ok {
		return nil, fmt.Errorf("eigen gate has symbolic exponent %s and no numeric unitary", g.Exponent())
	}

	components := g.EigenComponents()
	if len(components) == 0 {
		return nil, fmt.Errorf("eigen gate has no eigen components")
	}

	rows, cols := components[0].Projector.Dims()
	u := mat.NewCDense(rows, cols, nil)
	for _, component := range components {
		phase := cmplx.Exp(complex(0, math.Pi*component.Exponent*theta))
		pr, pc := component.Projector.Dims()
		if pr != rows || pc != cols {
			return nil, fmt.Errorf("eigen component projector is %dx%d, expected %dx%d", pr, pc, rows, cols)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u.Set(r, c, u.At(r, c)+phase*component.Projector.At(r, c))
			}
		}
	}
	return u, nil
}

// CanonicalizeExponent reduces a numeric exponent into [0, period).
func CanonicalizeExponent(exponent, period float64) float64 {
	if period <= 0 {
		return exponent
	}
	reduced := math.Mod(exponent, period)
	if reduced < 0 {
		reduced += period
	}
	return reduced
}

// Equal reports entry-wise equality of two matrices within tol.
func Equal(a, b *mat.CDense, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for r := 0; r < ar; r++ {
		for c := 0; c < ac; c++ {
			if cmplx.Abs(a.At(r, c)-b.At(r, c)) > tol {
				return false
			}
		}
	}
	return true
}

// EqualUpToGlobalPhase reports whether a and b differ only by a
// global complex phase of modulus one, within tol. The reference
// phase is taken from the largest entry of a, so no particular phase
// convention is assumed.
func EqualUpToGlobalPhase(a, b *mat.CDense, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}

	// Anchor on the largest entry of a to avoid dividing by noise.
	var pivot, largest complex128
	var pr, pc int
	for r := 0; r < ar; r++ {
		for c := 0; c < ac; c++ {
			if cmplx.Abs(a.At(r, c)) > cmplx.Abs(largest) {
				largest = a.At(r, c)
				pr, pc = r, c
			}
		}
	}
	if cmplx.Abs(largest) <= tol {
		return Equal(a, b, tol)
	}
	pivot = b.At(pr, pc) / largest
	if math.Abs(cmplx.Abs(pivot)-1) > tol {
		return false
	}

	for r := 0; r < ar; r++ {
		for c := 0; c < ac; c++ {
			if cmplx.Abs(pivot*a.At(r, c)-b.At(r, c)) > tol {
				return false
			}
		}
	}
	return true
}
