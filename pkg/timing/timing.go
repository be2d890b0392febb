// Package timing provides defer-friendly duration logging for
// circuit-synthesis operations.
package timing

import (
	"time"

	"github.com/rs/zerolog"
)

// OperationTimer measures the duration of a synthesis operation.
//
// Usage:
//
//	defer timing.OperationTimer("trotter_evolve", log)()
func OperationTimer(operation string, log zerolog.Logger) func() {
	start := time.Now()

	return func() {
		duration := time.Since(start)

		log.Debug().
			Str("operation", operation).
			Dur("duration_ms", duration).
			Msg("Operation completed")
	}
}

// MeasureEmission measures how long an operation-emitting phase took
// and how many operations it produced.
func MeasureEmission(phase string, log zerolog.Logger) func(emitted int) {
	start := time.Now()

	return func(emitted int) {
		log.Debug().
			Str("phase", phase).
			Dur("duration_ms", time.Since(start)).
			Int("operations", emitted).
			Msg("Phase emitted")
	}
}
