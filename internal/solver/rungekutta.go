package solver

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// RungeKutta is the classic fourth-order Runge-Kutta method. Scratch
// slices are reused across steps; a solver instance is bound to one
// simulation and is not safe for concurrent use.
type RungeKutta struct {
	sim            ode.ODESystem
	inp, result    []float64
	k1, k2, k3, k4 []float64
}

func NewRungeKutta(sim ode.ODESystem) *RungeKutta {
	return &RungeKutta{sim: sim}
}

func (r *RungeKutta) Name() string { return "runge_kutta" }

func (r *RungeKutta) ensureScratch(n int) {
	if len(r.inp) != n {
		r.inp = make([]float64, n)
		r.result = make([]float64, n)
		r.k1 = make([]float64, n)
		r.k2 = make([]float64, n)
		r.k3 = make([]float64, n)
		r.k4 = make([]float64, n)
	}
}

func (r *RungeKutta) Step(timeStep float64) error {
	va := r.sim.Vars()
	vals := va.Values(true)
	n := len(vals)
	r.ensureScratch(n)

	zero(r.k1)
	if err := r.sim.Evaluate(vals, r.k1, 0); err != nil {
		return stepError(r.Name(), timeStep, err)
	}

	for i := 0; i < n; i++ {
		r.inp[i] = vals[i] + timeStep*0.5*r.k1[i]
	}
	zero(r.k2)
	if err := r.sim.Evaluate(r.inp, r.k2, timeStep/2); err != nil {
		return stepError(r.Name(), timeStep, err)
	}

	for i := 0; i < n; i++ {
		r.inp[i] = vals[i] + timeStep*0.5*r.k2[i]
	}
	zero(r.k3)
	if err := r.sim.Evaluate(r.inp, r.k3, timeStep/2); err != nil {
		return stepError(r.Name(), timeStep, err)
	}

	for i := 0; i < n; i++ {
		r.inp[i] = vals[i] + timeStep*r.k3[i]
	}
	zero(r.k4)
	if err := r.sim.Evaluate(r.inp, r.k4, timeStep); err != nil {
		return stepError(r.Name(), timeStep, err)
	}

	dt6 := timeStep / 6.0
	for i := 0; i < n; i++ {
		r.result[i] = vals[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	if err := va.SetValues(r.result, true); err != nil {
		return stepError(r.Name(), timeStep, err)
	}
	return nil
}

func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}
