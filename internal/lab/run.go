package lab

import (
	"fmt"
	"math"

	"github.com/myphysicslab/myphysicslab-sub000/internal/advance"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// Result is the recorded output of one batch run.
type Result struct {
	// Names labels the columns of States, one per variable.
	Names   []string
	Times   []float64
	States  [][]float64
	Metrics map[string]float64
}

// Run advances the lab's system for the given duration, sampling every
// variable after each step. dt must be positive.
func Run(l *Lab, solverName string, dt, duration float64) (*Result, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("time step must be positive, got %g", dt)
	}
	ds, err := NewSolver(solverName, l.System)
	if err != nil {
		return nil, err
	}
	adv := advance.New(l.System, ds)

	va := l.System.Vars()
	names := make([]string, va.NumVariables())
	for i := range names {
		v, err := va.Variable(i)
		if err != nil {
			return nil, err
		}
		names[i] = v.Name()
	}

	steps := int(math.Round(duration / dt))
	res := &Result{
		Names:  names,
		Times:  make([]float64, 0, steps),
		States: make([][]float64, 0, steps),
	}
	for i := 0; i < steps; i++ {
		if err := adv.Advance(dt, nil); err != nil {
			return nil, err
		}
		res.Times = append(res.Times, l.System.Time())
		res.States = append(res.States, va.Values(true))
	}

	res.Metrics = metrics(l.System, res)
	return res, nil
}

// Column extracts one state column by variable name, or nil if absent.
func (r *Result) Column(name string) []float64 {
	col := -1
	for i, n := range r.Names {
		if n == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s[col]
	}
	return out
}

func metrics(sys ode.ODESystem, res *Result) map[string]float64 {
	m := map[string]float64{
		"steps": float64(len(res.Times)),
	}
	if len(res.Times) > 0 {
		m["final_time"] = res.Times[len(res.Times)-1]
	}
	if es, ok := sys.(ode.EnergySystem); ok {
		e := es.EnergyInfo()
		m["final_total_energy"] = e.Total()
		m["final_kinetic_energy"] = e.Translational
		m["final_potential_energy"] = e.Potential
	}
	return m
}
