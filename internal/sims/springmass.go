package sims

import (
	"fmt"

	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/input"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/vars"
)

// Variable indices for SpringMass.
const (
	smPosition = iota
	smVelocity
	smTime
	smKE
	smPE
	smTE
)

// forceArrowLife is how long the drag-force arrow stays visible after it
// is spawned.
const forceArrowLife = 0.5

// SpringMass is a block on a horizontal spring anchored to a fixed wall,
// with viscous damping. Position is the block's x coordinate.
type SpringMass struct {
	*ode.Base

	stiffness  float64
	restLength float64
	mass       float64
	damping    float64

	wall   *ode.Anchor
	spring *ode.Spring
	block  *ode.PointMass

	dragging bool
}

func NewSpringMass() (*SpringMass, error) {
	list, err := vars.NewList(
		[]string{"POSITION", "VELOCITY", "TIME", "KINETIC_ENERGY", "POTENTIAL_ENERGY", "TOTAL_ENERGY"},
		[]string{"position", "velocity", "time", "kinetic energy", "potential energy", "total energy"},
	)
	if err != nil {
		return nil, err
	}
	for _, i := range []int{smKE, smPE, smTE} {
		v, _ := list.Variable(i)
		v.SetComputed(true)
	}

	s := &SpringMass{
		Base:       ode.NewBase(list),
		stiffness:  3.0,
		restLength: 2.5,
		mass:       0.5,
		damping:    0.0,
		wall:       ode.NewAnchor("wall", geom.Vector{X: -3, Y: 0}),
		block:      ode.NewPointMass("block", 0.5),
	}
	s.spring = ode.NewSpring("spring", s.wall.Position(), s.restLength, s.stiffness)
	s.SimObjects().Add(s.wall)
	s.SimObjects().Add(s.spring)
	s.SimObjects().Add(s.block)

	// start stretched one unit past rest
	if err := list.SetValue(smPosition, s.wall.Position().X+s.restLength+1, false); err != nil {
		return nil, err
	}
	s.ModifyObjects()
	s.SaveInitialState()
	return s, nil
}

func (s *SpringMass) Block() *ode.PointMass { return s.block }

func (s *SpringMass) stretch(x float64) float64 {
	return x - s.wall.Position().X - s.restLength
}

func (s *SpringMass) Evaluate(state, change []float64, timeStep float64) error {
	change[smTime] = 1
	if s.dragging {
		return nil
	}
	x := state[smPosition]
	v := state[smVelocity]
	change[smPosition] = v
	change[smVelocity] = (-s.stiffness*s.stretch(x) - s.damping*v) / s.mass
	return nil
}

func (s *SpringMass) ModifyObjects() {
	va := s.Vars()
	x, _ := va.Value(smPosition)
	v, _ := va.Value(smVelocity)
	s.block.SetPosition(geom.Vector{X: x, Y: 0})
	s.block.SetVelocity(geom.Vector{X: v, Y: 0})
	s.spring.SetEnd(s.block.Position())

	e := s.EnergyInfo()
	_ = va.SetValue(smKE, e.Translational, true)
	_ = va.SetValue(smPE, e.Potential, true)
	_ = va.SetValue(smTE, e.Total(), true)
}

func (s *SpringMass) Reset() {
	s.Base.Reset()
	s.ModifyObjects()
}

func (s *SpringMass) EnergyInfo() ode.EnergyInfo {
	va := s.Vars()
	x, _ := va.Value(smPosition)
	v, _ := va.Value(smVelocity)
	st := s.stretch(x)
	return ode.EnergyInfo{
		Potential:     0.5 * s.stiffness * st * st,
		Translational: 0.5 * s.mass * v * v,
	}
}

func (s *SpringMass) Params() map[string]float64 {
	return map[string]float64{
		"stiffness":   s.stiffness,
		"rest_length": s.restLength,
		"mass":        s.mass,
		"damping":     s.damping,
	}
}

func (s *SpringMass) SetParam(name string, value float64) error {
	switch name {
	case "stiffness":
		if value < 0 {
			return fmt.Errorf("stiffness must be non-negative, got %g", value)
		}
		s.stiffness = value
		s.spring.SetStiffness(value)
	case "rest_length":
		s.restLength = value
	case "mass":
		if value <= 0 {
			return fmt.Errorf("mass must be positive, got %g", value)
		}
		s.mass = value
		s.block.SetMass(value)
	case "damping":
		s.damping = value
	default:
		return fmt.Errorf("unknown parameter %q", name)
	}
	if err := s.Vars().IncrSequence(); err != nil {
		return err
	}
	s.ModifyObjects()
	return nil
}

func (s *SpringMass) StartDrag(obj ode.SimObject, location, offset geom.Vector, dragBody *geom.Vector, mods input.Modifiers) bool {
	if obj != ode.SimObject(s.block) {
		return false
	}
	s.dragging = true
	return true
}

// MouseDrag moves the block along the spring axis, zeroes its velocity,
// and refreshes a short-lived arrow showing the spring force. The arrow
// replaces any similar previous one, so at most one exists at a time.
func (s *SpringMass) MouseDrag(obj ode.SimObject, location, offset geom.Vector, mods input.Modifiers) {
	if obj != ode.SimObject(s.block) {
		return
	}
	x := location.Sub(offset).X
	va := s.Vars()
	_ = va.SetValue(smPosition, x, false)
	_ = va.SetValue(smVelocity, 0, false)
	s.ModifyObjects()

	force := -s.stiffness * s.stretch(x)
	arrow := ode.NewArrow("spring_force",
		s.block.Position(),
		geom.Vector{X: force, Y: 0},
		s.Time()+forceArrowLife)
	s.SimObjects().Add(arrow)
}

func (s *SpringMass) FinishDrag(obj ode.SimObject, location, offset geom.Vector) {
	s.dragging = false
}

// HandleKeyEvent kicks the block: left and right arrows adjust velocity.
func (s *SpringMass) HandleKeyEvent(keyCode int, pressed bool, mods input.Modifiers) {
	if !pressed {
		return
	}
	va := s.Vars()
	v, _ := va.Value(smVelocity)
	switch keyCode {
	case input.KeyLeft:
		_ = va.SetValue(smVelocity, v-0.5, false)
	case input.KeyRight:
		_ = va.SetValue(smVelocity, v+0.5, false)
	}
}
