package trotter

import (
	"github.com/aristath/fermisim/pkg/circuit"
)

// StepAlgorithm is a method for performing Trotter steps. Evolution
// runs in three phases driven by an external caller:
//
//  1. Prepare emits preparatory operations (for instance a basis
//     change), once, before any step.
//  2. TrotterStep emits one discrete step of the product formula for
//     a given time slice. A step may permute the ordering in which
//     qubits represent fermionic modes; the caller must apply
//     StepQubitPermutation to its own bookkeeping between every pair
//     of consecutive steps.
//  3. Finish emits closing operations, once, after the last step.
//
// Within each phase, position j of the register holds fermionic mode
// j as of the moment the phase is invoked.
type StepAlgorithm interface {
	// Controlled reports whether every phase receives and must use a
	// control qubit. Fixed per algorithm.
	Controlled() bool

	// Prepare emits operations to perform before the first step.
	Prepare(reg circuit.Register, h *DiagonalCoulombHamiltonian, control *circuit.Qubit) ([]circuit.Operation, error)

	// TrotterStep emits one step of evolution under h for the given
	// time slice.
	TrotterStep(reg circuit.Register, h *DiagonalCoulombHamiltonian, time float64, control *circuit.Qubit) ([]circuit.Operation, error)

	// StepQubitPermutation maps the register and control qubit as
	// they stand before a step to how they stand after it.
	StepQubitPermutation(reg circuit.Register, control *circuit.Qubit) (circuit.Register, *circuit.Qubit)

	// Finish emits operations to perform after nSteps steps are done.
	// When omitFinalSwaps is true, trailing swap operations that only
	// restore the original mode ordering may be left out.
	Finish(reg circuit.Register, h *DiagonalCoulombHamiltonian, nSteps int, control *circuit.Qubit, omitFinalSwaps bool) ([]circuit.Operation, error)

	// FinishQubitPermutation maps the register and control qubit as
	// they stand before Finish to how they stand after it, under the
	// same nSteps and omitFinalSwaps that Finish was given.
	FinishQubitPermutation(reg circuit.Register, nSteps int, control *circuit.Qubit, omitFinalSwaps bool) (circuit.Register, *circuit.Qubit)
}

// AlgorithmBase supplies the protocol's default phase bodies: no
// preparatory or closing operations, identity permutation, not
// controlled. Concrete algorithms embed it and implement TrotterStep.
type AlgorithmBase struct{}

// Controlled returns false.
func (AlgorithmBase) Controlled() bool {
	return false
}

// Prepare emits nothing.
func (AlgorithmBase) Prepare(circuit.Register, *DiagonalCoulombHamiltonian, *circuit.Qubit) ([]circuit.Operation, error) {
	return nil, nil
}

// StepQubitPermutation is the identity permutation.
func (AlgorithmBase) StepQubitPermutation(reg circuit.Register, control *circuit.Qubit) (circuit.Register, *circuit.Qubit) {
	return reg, control
}

// Finish emits nothing.
func (AlgorithmBase) Finish(circuit.Register, *DiagonalCoulombHamiltonian, int, *circuit.Qubit, bool) ([]circuit.Operation, error) {
	return nil, nil
}

// FinishQubitPermutation is the identity permutation.
func (AlgorithmBase) FinishQubitPermutation(reg circuit.Register, nSteps int, control *circuit.Qubit, omitFinalSwaps bool) (circuit.Register, *circuit.Qubit) {
	return reg, control
}
