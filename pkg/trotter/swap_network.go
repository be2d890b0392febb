package trotter

import (
	"math"

	"github.com/aristath/fermisim/pkg/circuit"
)

// LinearSwapNetwork is a first-order Trotter step for diagonal
// Coulomb Hamiltonians on a linear qubit ordering. Each step sweeps a
// brick-wall network of fermionic swaps over adjacent mode pairs,
// applying the two-body interaction to every pair exactly once using
// only nearest-neighbor operations. A full sweep reverses the order
// in which qubits represent fermionic modes, which
// StepQubitPermutation reports to the caller.
//
// One-body off-diagonal terms are outside the primitive set used
// here; the step covers the diagonal part T[j][j] via Z rotations.
type LinearSwapNetwork struct {
	AlgorithmBase
}

// NewLinearSwapNetwork returns the algorithm.
func NewLinearSwapNetwork() *LinearSwapNetwork {
	return &LinearSwapNetwork{}
}

// TrotterStep emits one sweep of the swap network for the given time
// slice. With H summed over ordered mode pairs, an occupied pair
// (a, b) accumulates exp(-i*2*V[a][b]*t) and a single occupied mode j
// accumulates exp(-i*(T[j][j]+V[j][j])*t), the V[j][j] term being the
// n_j*n_j self-interaction.
func (alg *LinearSwapNetwork) TrotterStep(reg circuit.Register, h *DiagonalCoulombHamiltonian, time float64, control *circuit.Qubit) ([]circuit.Operation, error) {
	n := len(reg)
	var ops []circuit.Operation

	// Mode currently held by each register position.
	modes := make([]int, n)
	for i := range modes {
		modes[i] = i
	}

	for j := 0; j < n; j++ {
		exponent := -(real(h.OneBody(j, j)) + h.TwoBody(j, j)) * time / math.Pi
		if exponent != 0 {
			ops = append(ops, circuit.ZPow(reg[j], circuit.Num(exponent)))
		}
	}

	// Brick-wall sweep: n layers of adjacent transpositions bring
	// every mode pair adjacent exactly once and reverse the order.
	for layer := 0; layer < n; layer++ {
		for i := layer % 2; i+1 < n; i += 2 {
			a, b := modes[i], modes[i+1]
			exponent := -2 * h.TwoBody(a, b) * time / math.Pi
			if exponent != 0 {
				ops = append(ops, circuit.CZPow(reg[i], reg[i+1], circuit.Num(exponent)))
			}
			ops = append(ops, fermionicSwap(reg[i], reg[i+1])...)
			modes[i], modes[i+1] = modes[i+1], modes[i]
		}
	}

	return ops, nil
}

// StepQubitPermutation reports the order reversal induced by one
// sweep.
func (alg *LinearSwapNetwork) StepQubitPermutation(reg circuit.Register, control *circuit.Qubit) (circuit.Register, *circuit.Qubit) {
	return reg.Reversed(), control
}

// Finish restores the original mode ordering with one more fermionic
// swap sweep when the total step count is odd, unless the caller
// allows the trailing swaps to be omitted.
func (alg *LinearSwapNetwork) Finish(reg circuit.Register, h *DiagonalCoulombHamiltonian, nSteps int, control *circuit.Qubit, omitFinalSwaps bool) ([]circuit.Operation, error) {
	if omitFinalSwaps || nSteps%2 == 0 {
		return nil, nil
	}

	n := len(reg)
	var ops []circuit.Operation
	for layer := 0; layer < n; layer++ {
		for i := layer % 2; i+1 < n; i += 2 {
			ops = append(ops, fermionicSwap(reg[i], reg[i+1])...)
		}
	}
	return ops, nil
}

// FinishQubitPermutation reports the reversal undone by Finish's
// restoring sweep, or the identity when that sweep is skipped.
func (alg *LinearSwapNetwork) FinishQubitPermutation(reg circuit.Register, nSteps int, control *circuit.Qubit, omitFinalSwaps bool) (circuit.Register, *circuit.Qubit) {
	if omitFinalSwaps || nSteps%2 == 0 {
		return reg, control
	}
	return reg.Reversed(), control
}

// fermionicSwap exchanges two Jordan-Wigner-adjacent modes: a SWAP
// followed by a CZ to track the fermionic exchange sign.
func fermionicSwap(a, b circuit.Qubit) []circuit.Operation {
	return []circuit.Operation{
		circuit.SWAP(a, b),
		circuit.CZ(a, b),
	}
}
