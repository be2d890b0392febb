// Package gates provides parameterized multi-qubit gates for
// fermionic simulation circuits.
package gates

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/fermisim/pkg/circuit"
	"github.com/aristath/fermisim/pkg/operator"
)

// DoubleExcitationGate evolves under -|0011><1100| + h.c. for some
// time. On four qubits (p, q, r, s) it couples the two
// double-excitation basis states |0011> and |1100> and acts as the
// identity everywhere else. The exponent is measured in half-turns
// and is periodic with period 2.
type DoubleExcitationGate struct {
	halfTurns circuit.Exponent
}

// DoubleExcitation is the gate at a full half-turn (exponent 1).
var DoubleExcitation = &DoubleExcitationGate{halfTurns: circuit.Num(1)}

// DoubleExcitationOpts selects the exponent angle in exactly one
// unit. At most one field may be set; none defaults the exponent to
// one half-turn. A duration d converts as exponent = 2*d/pi.
type DoubleExcitationOpts struct {
	HalfTurns *circuit.Exponent
	Rads      *float64
	Degs      *float64
	Duration  *float64
}

// NewDoubleExcitation builds the gate from its options. It fails if
// more than one angle unit is supplied.
func NewDoubleExcitation(opts DoubleExcitationOpts) (*DoubleExcitationGate, error) {
	given := 0
	if opts.HalfTurns != nil {
		given++
	}
	if opts.Rads != nil {
		given++
	}
	if opts.Degs != nil {
		given++
	}
	if opts.Duration != nil {
		given++
	}
	if given > 1 {
		return nil, fmt.Errorf("redundant exponent specification: use one of HalfTurns, Rads, Degs, or Duration")
	}

	var exponent circuit.Exponent
	switch {
	case opts.Duration != nil:
		exponent = circuit.Num(2 * *opts.Duration / math.Pi)
	default:
		exponent = chosenAngleToHalfTurns(opts.HalfTurns, opts.Rads, opts.Degs)
	}
	return &DoubleExcitationGate{halfTurns: exponent}, nil
}

// chosenAngleToHalfTurns converts whichever single angle was given to
// half-turns, defaulting to 1 when none was.
func chosenAngleToHalfTurns(halfTurns *circuit.Exponent, rads, degs *float64) circuit.Exponent {
	switch {
	case halfTurns != nil:
		return *halfTurns
	case rads != nil:
		return circuit.Num(*rads / math.Pi)
	case degs != nil:
		return circuit.Num(*degs / 180)
	default:
		return circuit.Num(1)
	}
}

// HalfTurns returns the stored exponent.
func (g *DoubleExcitationGate) HalfTurns() circuit.Exponent {
	return g.halfTurns
}

// Exponent implements operator.EigenGate.
func (g *DoubleExcitationGate) Exponent() circuit.Exponent {
	return g.halfTurns
}

// WithExponent returns a new gate with the given exponent; all fixed
// structure is unchanged.
func (g *DoubleExcitationGate) WithExponent(exponent circuit.Exponent) *DoubleExcitationGate {
	return &DoubleExcitationGate{halfTurns: exponent}
}

// EigenComponents returns the gate's fixed eigen-decomposition: a
// 14-dimensional eigenvalue-0 subspace covering every basis state
// except the two double-excitation states, and rank-1 eigenvalue -1
// and +1 projectors onto the symmetric and antisymmetric combinations
// of |0011> (index 3) and |1100> (index 12).
func (g *DoubleExcitationGate) EigenComponents() []operator.EigenComponent {
	minusOne := mat.NewCDense(16, 16, nil)
	minusOne.Set(3, 3, 0.5)
	minusOne.Set(12, 12, 0.5)
	minusOne.Set(3, 12, -0.5)
	minusOne.Set(12, 3, -0.5)

	plusOne := mat.NewCDense(16, 16, nil)
	plusOne.Set(3, 3, 0.5)
	plusOne.Set(12, 12, 0.5)
	plusOne.Set(3, 12, 0.5)
	plusOne.Set(12, 3, 0.5)

	rest := mat.NewCDense(16, 16, nil)
	for i := 0; i < 16; i++ {
		if i == 3 || i == 12 {
			continue
		}
		rest.Set(i, i, 1)
	}

	return []operator.EigenComponent{
		{Exponent: 0, Projector: rest},
		{Exponent: -1, Projector: minusOne},
		{Exponent: 1, Projector: plusOne},
	}
}

// CanonicalExponentPeriod implements operator.EigenGate: exponents
// theta and theta+2 produce the identical operator.
func (g *DoubleExcitationGate) CanonicalExponentPeriod() (float64, bool) {
	return 2, true
}

// Decompose expands the gate on qubits (p, q, r, s) into CNOT,
// X-power and Z-power primitives that implement it exactly for the
// stored exponent, numeric or symbolic.
//
// The outer CNOT network (r,s), (q,p), (q,r) moves the circuit into a
// basis where the double-excitation subspace is addressed by phase
// logic on q conditioned on the joint parity of s and r; the central
// phase-parity block imprints +-1/8 turns on each parity branch, and
// the X(q) powers carry the continuous exponent. The same network in
// reverse undoes the basis change.
func (g *DoubleExcitationGate) Decompose(p, q, r, s circuit.Qubit) []circuit.Operation {
	phaseParityBlock := []circuit.Operation{
		circuit.ZPow(q, circuit.Num(0.125)),
		circuit.CNOT(r, q),
		circuit.ZPow(q, circuit.Num(-0.125)),
		circuit.CNOT(s, r),
		circuit.CNOT(r, q),
		circuit.CNOT(s, r),
		circuit.ZPow(q, circuit.Num(0.125)),
		circuit.CNOT(r, q),
		circuit.ZPow(q, circuit.Num(-0.125)),
	}

	ops := []circuit.Operation{
		circuit.CNOT(r, s),
		circuit.CNOT(q, p),
		circuit.CNOT(q, r),
		circuit.XPow(q, g.halfTurns.Neg()),
	}
	ops = append(ops, phaseParityBlock...)

	ops = append(ops, circuit.CNOT(p, q), circuit.X(q))
	ops = append(ops, phaseParityBlock...)
	ops = append(ops, circuit.XPow(q, g.halfTurns))
	ops = append(ops, phaseParityBlock...)
	ops = append(ops, circuit.CNOT(p, q), circuit.X(q))

	ops = append(ops, phaseParityBlock...)
	ops = append(ops,
		circuit.CNOT(q, p),
		circuit.CNOT(q, r),
		circuit.CNOT(r, s),
	)
	return ops
}

// DiagramInfo returns the four wire symbols distinguishing the
// excitation and de-excitation wire roles, with the exponent as the
// display annotation.
func (g *DoubleExcitationGate) DiagramInfo(useUnicode bool) circuit.DiagramInfo {
	if useUnicode {
		return circuit.DiagramInfo{
			WireSymbols: []string{"⇅", "⇅", "⇵", "⇵"},
			Exponent:    g.halfTurns,
		}
	}
	return circuit.DiagramInfo{
		WireSymbols: []string{`/\ \/`, `/\ \/`, `\/ /\`, `\/ /\`},
		Exponent:    g.halfTurns,
	}
}

func (g *DoubleExcitationGate) String() string {
	if g.halfTurns.IsOne() {
		return "DoubleExcitation"
	}
	return fmt.Sprintf("DoubleExcitation**%s", g.halfTurns)
}
