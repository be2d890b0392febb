package trotter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/fermisim/pkg/circuit"
	"github.com/aristath/fermisim/pkg/timing"
)

// Driver owns the phase ordering and permutation bookkeeping the
// StepAlgorithm contract leaves to the caller: prepare once, then
// n steps with StepQubitPermutation applied between consecutive
// steps, then finish once.
type Driver struct {
	algorithm StepAlgorithm
	log       zerolog.Logger
}

// NewDriver creates a driver for the given algorithm.
func NewDriver(algorithm StepAlgorithm, log zerolog.Logger) *Driver {
	return &Driver{
		algorithm: algorithm,
		log:       log.With().Str("component", "trotter_driver").Logger(),
	}
}

// EvolutionResult is the outcome of a full evolution: the combined
// operation list and the register/control labeling after all
// permutations, plus the labeling snapshot taken before each step.
type EvolutionResult struct {
	Operations    []circuit.Operation
	FinalRegister circuit.Register
	FinalControl  *circuit.Qubit

	// StepRegisters[k] is the register ordering in effect when step k
	// was invoked.
	StepRegisters []circuit.Register
}

// Evolve runs the full protocol: evolution under h for totalTime
// split into nSteps equal slices. The control qubit is required iff
// the algorithm is controlled; for uncontrolled algorithms it is
// ignored.
func (d *Driver) Evolve(reg circuit.Register, h *DiagonalCoulombHamiltonian, totalTime float64, nSteps int, control *circuit.Qubit, omitFinalSwaps bool) (*EvolutionResult, error) {
	defer timing.OperationTimer("trotter_evolve", d.log)()

	if nSteps < 0 {
		return nil, fmt.Errorf("step count must be non-negative, got %d", nSteps)
	}
	if len(reg) != h.Modes() {
		return nil, fmt.Errorf("register has %d qubits, hamiltonian has %d modes", len(reg), h.Modes())
	}
	if d.algorithm.Controlled() {
		if control == nil {
			return nil, fmt.Errorf("algorithm is controlled but no control qubit was given")
		}
	} else {
		control = nil
	}

	runID := uuid.New().String()
	log := d.log.With().Str("run_id", runID).Logger()
	log.Debug().
		Int("modes", h.Modes()).
		Int("steps", nSteps).
		Float64("total_time", totalTime).
		Bool("controlled", d.algorithm.Controlled()).
		Msg("Starting Trotter evolution")

	result := &EvolutionResult{}
	current := reg.Clone()

	prepDone := timing.MeasureEmission("prepare", log)
	prep, err := d.algorithm.Prepare(current, h, control)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	prepDone(len(prep))
	result.Operations = append(result.Operations, prep...)

	stepTime := 0.0
	if nSteps > 0 {
		stepTime = totalTime / float64(nSteps)
	}

	for k := 0; k < nSteps; k++ {
		result.StepRegisters = append(result.StepRegisters, current.Clone())

		stepDone := timing.MeasureEmission("trotter_step", log.With().Int("step", k).Logger())
		ops, err := d.algorithm.TrotterStep(current, h, stepTime, control)
		if err != nil {
			return nil, fmt.Errorf("trotter step %d: %w", k, err)
		}
		stepDone(len(ops))
		result.Operations = append(result.Operations, ops...)

		// The emitted operations are only valid if positions match
		// the post-permutation labeling by the next phase.
		current, control = d.algorithm.StepQubitPermutation(current, control)
	}

	finishDone := timing.MeasureEmission("finish", log)
	fin, err := d.algorithm.Finish(current, h, nSteps, control, omitFinalSwaps)
	if err != nil {
		return nil, fmt.Errorf("finish: %w", err)
	}
	finishDone(len(fin))
	result.Operations = append(result.Operations, fin...)

	// Finish may itself move modes, for instance a restoring swap
	// sweep, so the reported labeling has to track it too.
	current, control = d.algorithm.FinishQubitPermutation(current, nSteps, control, omitFinalSwaps)

	result.FinalRegister = current
	result.FinalControl = control

	log.Debug().
		Int("total_operations", len(result.Operations)).
		Msg("Trotter evolution complete")
	return result, nil
}
