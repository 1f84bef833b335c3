// Package solver provides the pluggable numerical integrators that step a
// simulation's variable list forward by one time step.
package solver

import (
	"errors"
	"fmt"
)

// ErrStepFailed indicates an integration step could not complete; the
// wrapped error carries the cause (evaluate failure or NaN in the result).
var ErrStepFailed = errors.New("solver: step failed")

// DiffEqSolver advances its bound simulation's state by one time step.
// Step writes the new state back into the simulation's variable list as a
// continuous change; a non-nil error means the state was not advanced.
type DiffEqSolver interface {
	Name() string
	Step(timeStep float64) error
}

func stepError(name string, timeStep float64, err error) error {
	return fmt.Errorf("%w: %s dt=%g: %v", ErrStepFailed, name, timeStep, err)
}
