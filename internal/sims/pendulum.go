// Package sims holds the concrete simulations: each one wires a variable
// list, the sim objects mirroring it, the equations of motion, and the
// drag behavior for pointer interaction.
package sims

import (
	"fmt"
	"math"

	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/input"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/vars"
)

// Variable indices for Pendulum.
const (
	pendAngle = iota
	pendAngularVelocity
	pendTime
	pendKE
	pendPE
	pendTE
)

// Pendulum is a rigid pendulum with gravity and viscous damping. The
// angle is measured from straight down, positive counterclockwise.
type Pendulum struct {
	*ode.Base

	gravity float64
	length  float64
	mass    float64
	damping float64

	pivot *ode.Anchor
	rod   *ode.Spring
	bob   *ode.PointMass

	// dragging freezes the equations of motion while the pointer holds
	// the bob.
	dragging bool
}

func NewPendulum() (*Pendulum, error) {
	list, err := vars.NewList(
		[]string{"ANGLE", "ANGULAR_VELOCITY", "TIME", "KINETIC_ENERGY", "POTENTIAL_ENERGY", "TOTAL_ENERGY"},
		[]string{"angle", "angular velocity", "time", "kinetic energy", "potential energy", "total energy"},
	)
	if err != nil {
		return nil, err
	}
	for _, i := range []int{pendKE, pendPE, pendTE} {
		v, _ := list.Variable(i)
		v.SetComputed(true)
	}

	p := &Pendulum{
		Base:    ode.NewBase(list),
		gravity: 9.8,
		length:  1.0,
		mass:    1.0,
		damping: 0.0,
		pivot:   ode.NewAnchor("pivot", geom.Vector{}),
		bob:     ode.NewPointMass("bob", 1.0),
	}
	p.rod = ode.NewSpring("rod", p.pivot.Position(), p.length, 0)
	p.SimObjects().Add(p.pivot)
	p.SimObjects().Add(p.rod)
	p.SimObjects().Add(p.bob)

	if err := list.SetValue(pendAngle, math.Pi/4, false); err != nil {
		return nil, err
	}
	p.ModifyObjects()
	p.SaveInitialState()
	return p, nil
}

func (p *Pendulum) Bob() *ode.PointMass { return p.bob }

func (p *Pendulum) Evaluate(state, change []float64, timeStep float64) error {
	change[pendTime] = 1
	if p.dragging {
		return nil
	}
	theta := state[pendAngle]
	omega := state[pendAngularVelocity]
	change[pendAngle] = omega
	change[pendAngularVelocity] = -(p.gravity/p.length)*math.Sin(theta) -
		p.damping*omega/(p.mass*p.length*p.length)
	return nil
}

// ModifyObjects positions the bob and rod from the current angle and
// refreshes the computed energy variables.
func (p *Pendulum) ModifyObjects() {
	va := p.Vars()
	theta, _ := va.Value(pendAngle)
	pos := p.pivot.Position().Add(geom.Vector{
		X: p.length * math.Sin(theta),
		Y: -p.length * math.Cos(theta),
	})
	p.bob.SetPosition(pos)
	omega, _ := va.Value(pendAngularVelocity)
	p.bob.SetVelocity(geom.Vector{
		X: p.length * omega * math.Cos(theta),
		Y: p.length * omega * math.Sin(theta),
	})
	p.rod.SetEnd(pos)

	e := p.EnergyInfo()
	_ = va.SetValue(pendKE, e.Translational, true)
	_ = va.SetValue(pendPE, e.Potential, true)
	_ = va.SetValue(pendTE, e.Total(), true)
}

func (p *Pendulum) Reset() {
	p.Base.Reset()
	p.ModifyObjects()
}

// EnergyInfo reports energies with the potential zero at the pivot
// height minus the rod length (the rest position).
func (p *Pendulum) EnergyInfo() ode.EnergyInfo {
	va := p.Vars()
	theta, _ := va.Value(pendAngle)
	omega, _ := va.Value(pendAngularVelocity)
	ke := 0.5 * p.mass * p.length * p.length * omega * omega
	pe := p.mass * p.gravity * p.length * (1 - math.Cos(theta))
	return ode.EnergyInfo{Potential: pe, Translational: ke}
}

func (p *Pendulum) Params() map[string]float64 {
	return map[string]float64{
		"gravity": p.gravity,
		"length":  p.length,
		"mass":    p.mass,
		"damping": p.damping,
	}
}

// SetParam updates a physics parameter. Parameter changes are
// discontinuous, so every variable's sequence is bumped.
func (p *Pendulum) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		p.gravity = value
	case "length":
		if value <= 0 {
			return fmt.Errorf("length must be positive, got %g", value)
		}
		p.length = value
		p.rod.SetRestLength(value)
	case "mass":
		if value <= 0 {
			return fmt.Errorf("mass must be positive, got %g", value)
		}
		p.mass = value
		p.bob.SetMass(value)
	case "damping":
		p.damping = value
	default:
		return fmt.Errorf("unknown parameter %q", name)
	}
	if err := p.Vars().IncrSequence(); err != nil {
		return err
	}
	p.ModifyObjects()
	return nil
}

// StartDrag accepts the gesture only for the bob and freezes the
// equations of motion while it lasts.
func (p *Pendulum) StartDrag(obj ode.SimObject, location, offset geom.Vector, dragBody *geom.Vector, mods input.Modifiers) bool {
	if obj != ode.SimObject(p.bob) {
		return false
	}
	p.dragging = true
	return true
}

// MouseDrag sets the angle from the pointer position relative to the
// pivot and zeroes the angular velocity.
func (p *Pendulum) MouseDrag(obj ode.SimObject, location, offset geom.Vector, mods input.Modifiers) {
	if obj != ode.SimObject(p.bob) {
		return
	}
	at := location.Sub(offset).Sub(p.pivot.Position())
	theta := math.Atan2(at.X, -at.Y)
	va := p.Vars()
	_ = va.SetValue(pendAngle, theta, false)
	_ = va.SetValue(pendAngularVelocity, 0, false)
	p.ModifyObjects()
}

func (p *Pendulum) FinishDrag(obj ode.SimObject, location, offset geom.Vector) {
	p.dragging = false
}

// HandleKeyEvent nudges the pendulum: left and right arrows kick the
// angular velocity.
func (p *Pendulum) HandleKeyEvent(keyCode int, pressed bool, mods input.Modifiers) {
	if !pressed {
		return
	}
	va := p.Vars()
	omega, _ := va.Value(pendAngularVelocity)
	switch keyCode {
	case input.KeyLeft:
		_ = va.SetValue(pendAngularVelocity, omega-0.5, false)
	case input.KeyRight:
		_ = va.SetValue(pendAngularVelocity, omega+0.5, false)
	}
}
