// Package advance drives a simulation forward one step at a time: purge
// expired objects, integrate, resynchronize objects, notify recorders.
package advance

import (
	"fmt"

	"github.com/myphysicslab/myphysicslab-sub000/internal/history"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/solver"
)

// MemoList fans a memorize call out to registered recorders.
type MemoList struct {
	memos []history.Memorizable
}

func (m *MemoList) Add(memo history.Memorizable) {
	for _, existing := range m.memos {
		if existing == memo {
			return
		}
	}
	m.memos = append(m.memos, memo)
}

func (m *MemoList) Remove(memo history.Memorizable) {
	for i, existing := range m.memos {
		if existing == memo {
			m.memos = append(m.memos[:i], m.memos[i+1:]...)
			return
		}
	}
}

func (m *MemoList) Memorize() {
	for _, memo := range m.memos {
		memo.Memorize()
	}
}

// SimpleAdvance advances an ODE simulation with a fixed solver. A failed
// solver step is fatal for the Advance call: the error propagates and no
// retry or step-size reduction happens at this level.
type SimpleAdvance struct {
	sim      ode.ODESystem
	solver   solver.DiffEqSolver
	timeStep float64
}

// DefaultTimeStep matches a 40 fps display tick.
const DefaultTimeStep = 0.025

func New(sim ode.ODESystem, ds solver.DiffEqSolver) *SimpleAdvance {
	return &SimpleAdvance{sim: sim, solver: ds, timeStep: DefaultTimeStep}
}

func (a *SimpleAdvance) TimeStep() float64      { return a.timeStep }
func (a *SimpleAdvance) SetTimeStep(dt float64) { a.timeStep = dt }

// Advance steps the simulation by timeStep. On success the simulation
// time has advanced by exactly timeStep, every SimObject reflects the new
// state, and memos (if non-nil) have been memorized once.
func (a *SimpleAdvance) Advance(timeStep float64, memos *MemoList) error {
	a.sim.SimObjects().RemoveTemporary(a.sim.Time())
	if err := a.solver.Step(timeStep); err != nil {
		return fmt.Errorf("advance at t=%g: %w", a.sim.Time(), err)
	}
	a.sim.ModifyObjects()
	if memos != nil {
		memos.Memorize()
	}
	return nil
}

// Reset delegates to the simulation's Reset.
func (a *SimpleAdvance) Reset() {
	a.sim.Reset()
}
