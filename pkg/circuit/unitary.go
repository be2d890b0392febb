package circuit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Qubit ordering follows the big-endian convention: the qubit at
// register position 0 is the most significant bit of a basis index,
// so on a four-qubit register (p, q, r, s) the state |0011> has
// index 3.

// bitMask returns the basis-index bit owned by register position pos.
func bitMask(n, pos int) int {
	return 1 << (n - 1 - pos)
}

// ApplyOps applies the operations in order to a state vector of
// dimension 2^len(reg). The state is modified in place.
func ApplyOps(state []complex128, reg Register, ops []Operation) error {
	dim := 1 << len(reg)
	if len(state) != dim {
		return fmt.Errorf("state dimension %d does not match register of %d qubits", len(state), len(reg))
	}
	for _, op := range ops {
		if err := applyOperation(state, reg, op); err != nil {
			return err
		}
	}
	return nil
}

func applyOperation(state []complex128, reg Register, op Operation) error {
	u, err := op.Gate.Unitary()
	if err != nil {
		return err
	}
	k := op.Gate.Arity()
	if len(op.Qubits) != k {
		return fmt.Errorf("operation %s has %d qubits, gate wants %d", op, len(op.Qubits), k)
	}

	n := len(reg)
	masks := make([]int, k)
	allMask := 0
	for i, q := range op.Qubits {
		pos := reg.IndexOf(q)
		if pos < 0 {
			return fmt.Errorf("operation %s uses qubit %s not in register", op, q)
		}
		masks[i] = bitMask(n, pos)
		allMask |= masks[i]
	}

	sub := 1 << k
	idx := make([]int, sub)
	amps := make([]complex128, sub)
	for base := 0; base < len(state); base++ {
		if base&allMask != 0 {
			continue
		}
		// The gate's first qubit is the most significant bit of the
		// sub-index, matching the register convention.
		for s := 0; s < sub; s++ {
			i := base
			for j := 0; j < k; j++ {
				if s&(1<<(k-1-j)) != 0 {
					i |= masks[j]
				}
			}
			idx[s] = i
			amps[s] = state[i]
		}
		for s := 0; s < sub; s++ {
			var acc complex128
			for t := 0; t < sub; t++ {
				acc += u.At(s, t) * amps[t]
			}
			state[idx[s]] = acc
		}
	}
	return nil
}

// Unitary composes an operation list into the full unitary matrix
// over the register, applying operations column by column to the
// identity. Fails if any operation carries a symbolic exponent or
// touches a qubit outside the register.
func Unitary(reg Register, ops []Operation) (*mat.CDense, error) {
	dim := 1 << len(reg)
	u := mat.NewCDense(dim, dim, nil)
	col := make([]complex128, dim)
	for c := 0; c < dim; c++ {
		for i := range col {
			col[i] = 0
		}
		col[c] = 1
		if err := ApplyOps(col, reg, ops); err != nil {
			return nil, err
		}
		for r := 0; r < dim; r++ {
			u.Set(r, c, col[r])
		}
	}
	return u, nil
}
