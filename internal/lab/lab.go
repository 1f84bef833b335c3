// Package lab ties a simulation together with its solver and recorder
// and provides the name registry the CLI and front-ends build from.
package lab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/input"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/sims"
	"github.com/myphysicslab/myphysicslab-sub000/internal/solver"
)

// Lab is one ready-to-run simulation: the ODE system, its drag handler,
// and the simulation rectangle a view should start with.
type Lab struct {
	Name    string
	System  ode.ODESystem
	Handler input.EventHandler
	SimRect geom.Rect
}

// Factory builds a fresh Lab instance.
type Factory func() (*Lab, error)

var registry = map[string]Factory{}

func Register(name string, f Factory) {
	registry[name] = f
}

// New builds the named lab. Unknown names report the available set.
func New(name string) (*Lab, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown simulation %q (available: %s)",
			name, strings.Join(Names(), ", "))
	}
	return f()
}

// Names lists the registered simulations, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register("pendulum", func() (*Lab, error) {
		p, err := sims.NewPendulum()
		if err != nil {
			return nil, err
		}
		return &Lab{
			Name:    "pendulum",
			System:  p,
			Handler: p,
			SimRect: geom.Rect{Left: -1.5, Bottom: -1.5, Right: 1.5, Top: 1.5},
		}, nil
	})
	Register("spring_mass", func() (*Lab, error) {
		s, err := sims.NewSpringMass()
		if err != nil {
			return nil, err
		}
		return &Lab{
			Name:    "spring_mass",
			System:  s,
			Handler: s,
			SimRect: geom.Rect{Left: -4, Bottom: -2, Right: 2, Top: 2},
		}, nil
	})
}

// NewSolver builds the named solver for sys.
func NewSolver(name string, sys ode.ODESystem) (solver.DiffEqSolver, error) {
	switch strings.ToLower(name) {
	case "rk4", "runge_kutta", "":
		return solver.NewRungeKutta(sys), nil
	case "euler", "modified_euler":
		return solver.NewModifiedEuler(sys), nil
	}
	return nil, fmt.Errorf("unknown solver %q (available: rk4, euler)", name)
}

// SolverNames lists the accepted solver names.
func SolverNames() []string { return []string{"rk4", "euler"} }
