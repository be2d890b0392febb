package circuit

import (
	"fmt"

	"github.com/google/uuid"
)

// Qubit is an opaque, immutable qubit identity. Two qubits are the
// same wire iff their identities match; labels exist for humans and
// diagrams only.
type Qubit struct {
	id    uuid.UUID
	label string
}

// NewQubit creates a qubit with a fresh identity.
func NewQubit(label string) Qubit {
	return Qubit{id: uuid.New(), label: label}
}

// Label returns the human-readable label.
func (q Qubit) Label() string {
	return q.label
}

// Equal reports whether two qubits are the same wire.
func (q Qubit) Equal(other Qubit) bool {
	return q.id == other.id
}

func (q Qubit) String() string {
	return q.label
}

// Register is an ordered sequence of distinct qubits. In fermionic
// simulations position j holds the occupation of fermionic mode j;
// algorithms that permute modes return a reordered Register.
type Register []Qubit

// NewRegister creates a register of n fresh qubits labeled q0..q(n-1).
func NewRegister(n int) Register {
	reg := make(Register, n)
	for i := range reg {
		reg[i] = NewQubit(fmt.Sprintf("q%d", i))
	}
	return reg
}

// IndexOf returns the position of q in the register, or -1.
func (r Register) IndexOf(q Qubit) int {
	for i, candidate := range r {
		if candidate.Equal(q) {
			return i
		}
	}
	return -1
}

// Reversed returns a copy of the register in reverse order.
func (r Register) Reversed() Register {
	out := make(Register, len(r))
	for i, q := range r {
		out[len(r)-1-i] = q
	}
	return out
}

// Clone returns a shallow copy. Qubit values are immutable, so a
// shallow copy is a safe snapshot of the current ordering.
func (r Register) Clone() Register {
	out := make(Register, len(r))
	copy(out, r)
	return out
}

// Labels returns the labels in register order.
func (r Register) Labels() []string {
	labels := make([]string, len(r))
	for i, q := range r {
		labels[i] = q.Label()
	}
	return labels
}
