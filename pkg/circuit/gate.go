package circuit

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Gate is an elementary gate primitive. Unitary returns the gate's
// matrix over its own qubits (2x2 for one-qubit gates, 4x4 for
// two-qubit gates); it fails for symbolic exponents, which have no
// numeric matrix until the symbol is resolved.
type Gate interface {
	Name() string
	Arity() int
	Exponent() Exponent
	Unitary() (*mat.CDense, error)
	String() string
}

// Operation is a gate applied to a concrete tuple of qubits.
type Operation struct {
	Gate   Gate
	Qubits []Qubit
}

func (op Operation) String() string {
	args := ""
	for i, q := range op.Qubits {
		if i > 0 {
			args += ", "
		}
		args += q.Label()
	}
	return fmt.Sprintf("%s(%s)", op.Gate.String(), args)
}

// halfTurnPhase returns exp(i*pi*t).
func halfTurnPhase(t float64) complex128 {
	return cmplx.Exp(complex(0, math.Pi*t))
}

// errSymbolic wraps the single failure mode shared by all
// parameterized gates.
func errSymbolic(name string, e Exponent) error {
	return fmt.Errorf("gate %s has symbolic exponent %s and no numeric unitary", name, e)
}

// xPowGate is X raised to an exponent in half-turns. Eigen
// convention: X**t = P+ + exp(i*pi*t)*P- with P± projecting onto
// (|0> ± |1>)/sqrt(2), so X**1 is the plain NOT gate.
type xPowGate struct {
	exponent Exponent
}

func (g xPowGate) Name() string       { return "X" }
func (g xPowGate) Arity() int         { return 1 }
func (g xPowGate) Exponent() Exponent { return g.exponent }

func (g xPowGate) Unitary() (*mat.CDense, error) {
	t, ok := g.exponent.Float()
	if !ok {
		return nil, errSymbolic(g.Name(), g.exponent)
	}
	p := halfTurnPhase(t)
	a := (1 + p) / 2
	b := (1 - p) / 2
	return mat.NewCDense(2, 2, []complex128{a, b, b, a}), nil
}

func (g xPowGate) String() string {
	if g.exponent.IsOne() {
		return "X"
	}
	return fmt.Sprintf("X**%s", g.exponent)
}

// zPowGate is Z raised to an exponent in half-turns:
// Z**t = diag(1, exp(i*pi*t)).
type zPowGate struct {
	exponent Exponent
}

func (g zPowGate) Name() string       { return "Z" }
func (g zPowGate) Arity() int         { return 1 }
func (g zPowGate) Exponent() Exponent { return g.exponent }

func (g zPowGate) Unitary() (*mat.CDense, error) {
	t, ok := g.exponent.Float()
	if !ok {
		return nil, errSymbolic(g.Name(), g.exponent)
	}
	return mat.NewCDense(2, 2, []complex128{1, 0, 0, halfTurnPhase(t)}), nil
}

func (g zPowGate) String() string {
	if g.exponent.IsOne() {
		return "Z"
	}
	return fmt.Sprintf("Z**%s", g.exponent)
}

// cnotGate is the controlled-NOT with the first qubit as control.
type cnotGate struct{}

func (cnotGate) Name() string       { return "CNOT" }
func (cnotGate) Arity() int         { return 2 }
func (cnotGate) Exponent() Exponent { return Num(1) }

func (cnotGate) Unitary() (*mat.CDense, error) {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}), nil
}

func (cnotGate) String() string { return "CNOT" }

// czPowGate is the controlled-Z raised to an exponent in half-turns:
// diag(1, 1, 1, exp(i*pi*t)). Symmetric in its two qubits.
type czPowGate struct {
	exponent Exponent
}

func (g czPowGate) Name() string       { return "CZ" }
func (g czPowGate) Arity() int         { return 2 }
func (g czPowGate) Exponent() Exponent { return g.exponent }

func (g czPowGate) Unitary() (*mat.CDense, error) {
	t, ok := g.exponent.Float()
	if !ok {
		return nil, errSymbolic(g.Name(), g.exponent)
	}
	u := mat.NewCDense(4, 4, nil)
	u.Set(0, 0, 1)
	u.Set(1, 1, 1)
	u.Set(2, 2, 1)
	u.Set(3, 3, halfTurnPhase(t))
	return u, nil
}

func (g czPowGate) String() string {
	if g.exponent.IsOne() {
		return "CZ"
	}
	return fmt.Sprintf("CZ**%s", g.exponent)
}

// swapGate exchanges two qubits.
type swapGate struct{}

func (swapGate) Name() string       { return "SWAP" }
func (swapGate) Arity() int         { return 2 }
func (swapGate) Exponent() Exponent { return Num(1) }

func (swapGate) Unitary() (*mat.CDense, error) {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}), nil
}

func (swapGate) String() string { return "SWAP" }

// X applies a NOT gate to q.
func X(q Qubit) Operation {
	return XPow(q, Num(1))
}

// XPow applies X**e to q.
func XPow(q Qubit, e Exponent) Operation {
	return Operation{Gate: xPowGate{exponent: e}, Qubits: []Qubit{q}}
}

// Z applies a Z gate to q.
func Z(q Qubit) Operation {
	return ZPow(q, Num(1))
}

// ZPow applies Z**e to q.
func ZPow(q Qubit, e Exponent) Operation {
	return Operation{Gate: zPowGate{exponent: e}, Qubits: []Qubit{q}}
}

// CNOT applies a controlled-NOT with control c and target t.
func CNOT(c, t Qubit) Operation {
	return Operation{Gate: cnotGate{}, Qubits: []Qubit{c, t}}
}

// CZ applies a controlled-Z to the pair (a, b).
func CZ(a, b Qubit) Operation {
	return CZPow(a, b, Num(1))
}

// CZPow applies CZ**e to the pair (a, b).
func CZPow(a, b Qubit, e Exponent) Operation {
	return Operation{Gate: czPowGate{exponent: e}, Qubits: []Qubit{a, b}}
}

// SWAP exchanges qubits a and b.
func SWAP(a, b Qubit) Operation {
	return Operation{Gate: swapGate{}, Qubits: []Qubit{a, b}}
}

// DiagramInfo describes how a composite gate draws itself: one wire
// symbol per qubit plus the exponent annotation. Rendering is owned
// by the host toolkit; this is data only.
type DiagramInfo struct {
	WireSymbols []string
	Exponent    Exponent
}
