package ode

import (
	"errors"
	"fmt"

	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
	"github.com/myphysicslab/myphysicslab-sub000/internal/vars"
)

// Events broadcast by a simulation.
const (
	EventReset             = "RESET"
	EventInitialStateSaved = "INITIAL_STATE_SAVED"
	EventError             = "ERROR"
)

// ErrEvaluate indicates a derivative computation failed (e.g. a
// singularity); the solver reacts by aborting the step.
var ErrEvaluate = errors.New("ode: evaluate failed")

// Simulation is the minimal lifecycle contract every simulation exposes.
type Simulation interface {
	SimObjects() *SimList
	Time() float64

	// ModifyObjects pushes the current variable values into the
	// positions of the SimObjects and recomputes computed variables.
	// It is idempotent.
	ModifyObjects()

	// Reset restores the live state from the saved initial state, purges
	// expired temporary objects, and resynchronizes objects.
	Reset()

	// SaveInitialState snapshots the current state as the reset target.
	SaveInitialState()
}

// ODESystem is a simulation driven by a differential equation over its
// variable list.
type ODESystem interface {
	Simulation
	Vars() *vars.List

	// Evaluate computes the time-derivative of state into change, which
	// the caller supplies zeroed and same-length. state must not be
	// mutated. timeStep is the offset from the state's sample time, for
	// solvers that evaluate at substeps. A non-nil error signals an
	// integration failure without panicking.
	Evaluate(state, change []float64, timeStep float64) error
}

// EnergyInfo is a snapshot of a simulation's mechanical energy.
type EnergyInfo struct {
	Potential     float64
	Translational float64
}

func (e EnergyInfo) Total() float64 { return e.Potential + e.Translational }

func (e EnergyInfo) String() string {
	return fmt.Sprintf("PE=%.6f KE=%.6f TE=%.6f", e.Potential, e.Translational, e.Total())
}

// EnergySystem is the capability of reporting mechanical energy.
type EnergySystem interface {
	EnergyInfo() EnergyInfo
}

// Parameterized is the capability of exposing tunable physics parameters,
// keyed by lowercase name.
type Parameterized interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Base carries the plumbing shared by ODE simulations: the variable list,
// the object list, the initial-state snapshot for Reset, and a single-slot
// rollback buffer for collision backtracking. Concrete simulations embed
// *Base and implement Evaluate and ModifyObjects; their Reset should call
// Base.Reset then ModifyObjects.
type Base struct {
	observe.Broadcaster
	varsList *vars.List
	simList  *SimList
	initial  []float64
	recent   []float64
}

func NewBase(list *vars.List) *Base {
	return &Base{
		varsList: list,
		simList:  NewSimList(),
	}
}

func (b *Base) Vars() *vars.List     { return b.varsList }
func (b *Base) SimObjects() *SimList { return b.simList }

// Time reports the current simulation time, or zero when the variable
// list has no time variable.
func (b *Base) Time() float64 {
	t, err := b.varsList.Time()
	if err != nil {
		return 0
	}
	return t
}

// SaveInitialState snapshots the current values as the reset target and
// broadcasts INITIAL_STATE_SAVED.
func (b *Base) SaveInitialState() {
	b.initial = b.varsList.Values(true)
	b.Broadcast(EventInitialStateSaved, b)
}

// Reset restores the live values from the initial-state snapshot
// (discontinuously) and purges expired temporary objects. Broadcasts
// RESET. Callers embedding Base follow this with ModifyObjects.
func (b *Base) Reset() {
	if b.initial != nil {
		// Snapshot length always matches: variables added after
		// SaveInitialState retain their current values.
		_ = b.varsList.SetValues(b.initial, false)
	}
	b.simList.RemoveTemporary(b.Time())
	b.Broadcast(EventReset, b)
}

// SaveState stores the current full value array in the single-slot
// rollback buffer, overwriting any previous save.
func (b *Base) SaveState() {
	b.recent = b.varsList.Values(true)
}

// RestoreState discontinuity-restores the values stored by SaveState,
// letting a simulation back out of an invalid post-step state. With no
// prior SaveState it falls back to the initial state.
func (b *Base) RestoreState() {
	state := b.recent
	if state == nil {
		state = b.initial
	}
	if state != nil {
		_ = b.varsList.SetValues(state, false)
	}
}
