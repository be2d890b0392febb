// Package trotter implements Trotter-Suzuki product-formula
// decomposition of Hamiltonian time evolution: an abstract
// prepare / step / finish protocol with an explicit qubit-permutation
// contract, concrete step algorithms, and the driver that threads the
// permutation bookkeeping between steps.
package trotter

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DiagonalCoulombHamiltonian is a fermionic Hamiltonian with an
// arbitrary one-body term and a diagonal two-body (Coulomb) term:
//
//	H = sum_{j,k} T[j][k] a†_j a_k + sum_{j,k} V[j][k] n_j n_k
//
// OneBody must be hermitian and TwoBody real symmetric, both n x n
// for n fermionic modes.
type DiagonalCoulombHamiltonian struct {
	oneBody *mat.CDense
	twoBody *mat.Dense
}

// NewDiagonalCoulombHamiltonian validates shapes and symmetry within
// tolerance 1e-9 and wraps the coefficient matrices.
func NewDiagonalCoulombHamiltonian(oneBody *mat.CDense, twoBody *mat.Dense) (*DiagonalCoulombHamiltonian, error) {
	const tol = 1e-9

	or, oc := oneBody.Dims()
	tr, tc := twoBody.Dims()
	if or != oc {
		return nil, fmt.Errorf("one-body matrix is %dx%d, want square", or, oc)
	}
	if tr != tc {
		return nil, fmt.Errorf("two-body matrix is %dx%d, want square", tr, tc)
	}
	if or != tr {
		return nil, fmt.Errorf("one-body matrix has %d modes, two-body has %d", or, tr)
	}

	for i := 0; i < or; i++ {
		for j := i; j < or; j++ {
			if cmplx.Abs(oneBody.At(i, j)-cmplx.Conj(oneBody.At(j, i))) > tol {
				return nil, fmt.Errorf("one-body matrix is not hermitian at (%d, %d)", i, j)
			}
			if diff := twoBody.At(i, j) - twoBody.At(j, i); diff > tol || diff < -tol {
				return nil, fmt.Errorf("two-body matrix is not symmetric at (%d, %d)", i, j)
			}
		}
	}

	return &DiagonalCoulombHamiltonian{oneBody: oneBody, twoBody: twoBody}, nil
}

// Modes returns the number of fermionic modes.
func (h *DiagonalCoulombHamiltonian) Modes() int {
	n, _ := h.oneBody.Dims()
	return n
}

// OneBody returns the one-body coefficient T[j][k].
func (h *DiagonalCoulombHamiltonian) OneBody(j, k int) complex128 {
	return h.oneBody.At(j, k)
}

// TwoBody returns the two-body coefficient V[j][k].
func (h *DiagonalCoulombHamiltonian) TwoBody(j, k int) float64 {
	return h.twoBody.At(j, k)
}
