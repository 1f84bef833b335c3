// Package ode defines the simulation contract: the SimObject entities
// mirrored from state variables, the SimList that owns them, the
// capability interfaces a concrete simulation implements, and the Base
// plumbing shared by all ODE simulations.
package ode

import (
	"math"

	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
)

// Kind discriminates SimObject variants. Display and observer code
// switches on it instead of doing runtime type tests.
type Kind int

const (
	KindPointMass Kind = iota
	KindSpring
	KindArrow
	KindAnchor
)

func (k Kind) String() string {
	switch k {
	case KindPointMass:
		return "point_mass"
	case KindSpring:
		return "spring"
	case KindArrow:
		return "arrow"
	case KindAnchor:
		return "anchor"
	}
	return "unknown"
}

// SimObject is a visible or physical entity whose position mirrors the
// simulation's state variables via ModifyObjects. Objects with a finite
// ExpireTime are temporary and are purged once simulation time passes it.
type SimObject interface {
	Name() string
	Kind() Kind
	Position() geom.Vector
	SetPosition(p geom.Vector)

	// ExpireTime reports when the object should be purged;
	// +Inf for permanent objects.
	ExpireTime() float64

	// Similar reports whether other is interchangeable with this object
	// within tolerance, used to keep at most one of a family of ephemeral
	// visualizations alive.
	Similar(other SimObject, tolerance float64) bool
}

// PointMass is a movable mass concentrated at a point.
type PointMass struct {
	name     string
	mass     float64
	pos      geom.Vector
	velocity geom.Vector
	radius   float64
}

func NewPointMass(name string, mass float64) *PointMass {
	return &PointMass{name: name, mass: mass, radius: 0.3}
}

func (p *PointMass) Name() string                 { return p.name }
func (p *PointMass) Kind() Kind                   { return KindPointMass }
func (p *PointMass) Mass() float64                { return p.mass }
func (p *PointMass) SetMass(m float64)            { p.mass = m }
func (p *PointMass) Position() geom.Vector        { return p.pos }
func (p *PointMass) SetPosition(v geom.Vector)    { p.pos = v }
func (p *PointMass) Velocity() geom.Vector        { return p.velocity }
func (p *PointMass) SetVelocity(v geom.Vector)    { p.velocity = v }
func (p *PointMass) Radius() float64              { return p.radius }
func (p *PointMass) SetRadius(r float64)          { p.radius = r }
func (p *PointMass) ExpireTime() float64          { return math.Inf(1) }

func (p *PointMass) Similar(other SimObject, tolerance float64) bool {
	o, ok := other.(*PointMass)
	if !ok {
		return false
	}
	return p.name == o.name && p.pos.DistanceTo(o.pos) <= tolerance
}

// Spring connects a fixed start point to a movable end point. A spring
// with zero stiffness acts as a rigid rod for display purposes.
type Spring struct {
	name       string
	start      geom.Vector
	end        geom.Vector
	restLength float64
	stiffness  float64
}

func NewSpring(name string, start geom.Vector, restLength, stiffness float64) *Spring {
	return &Spring{name: name, start: start, restLength: restLength, stiffness: stiffness}
}

func (s *Spring) Name() string              { return s.name }
func (s *Spring) Kind() Kind                { return KindSpring }
func (s *Spring) Start() geom.Vector        { return s.start }
func (s *Spring) SetStart(p geom.Vector)    { s.start = p }
func (s *Spring) End() geom.Vector          { return s.end }
func (s *Spring) SetEnd(p geom.Vector)      { s.end = p }
func (s *Spring) RestLength() float64       { return s.restLength }
func (s *Spring) SetRestLength(l float64)   { s.restLength = l }
func (s *Spring) Stiffness() float64        { return s.stiffness }
func (s *Spring) SetStiffness(k float64)    { s.stiffness = k }
func (s *Spring) ExpireTime() float64       { return math.Inf(1) }

// Position reports the spring midpoint.
func (s *Spring) Position() geom.Vector {
	return s.start.Add(s.end).Scale(0.5)
}

// SetPosition translates both endpoints so the midpoint lands at p.
func (s *Spring) SetPosition(p geom.Vector) {
	d := p.Sub(s.Position())
	s.start = s.start.Add(d)
	s.end = s.end.Add(d)
}

// Stretch reports current length minus rest length.
func (s *Spring) Stretch() float64 {
	return s.end.DistanceTo(s.start) - s.restLength
}

func (s *Spring) Similar(other SimObject, tolerance float64) bool {
	o, ok := other.(*Spring)
	if !ok {
		return false
	}
	return s.name == o.name &&
		s.start.DistanceTo(o.start) <= tolerance &&
		s.end.DistanceTo(o.end) <= tolerance
}

// Arrow is a transient vector visualization (e.g. an applied force),
// purged automatically once its expire time passes.
type Arrow struct {
	name   string
	start  geom.Vector
	dir    geom.Vector
	expire float64
}

func NewArrow(name string, start, dir geom.Vector, expireTime float64) *Arrow {
	return &Arrow{name: name, start: start, dir: dir, expire: expireTime}
}

func (a *Arrow) Name() string                { return a.name }
func (a *Arrow) Kind() Kind                  { return KindArrow }
func (a *Arrow) Position() geom.Vector       { return a.start }
func (a *Arrow) SetPosition(p geom.Vector)   { a.start = p }
func (a *Arrow) Direction() geom.Vector      { return a.dir }
func (a *Arrow) SetDirection(d geom.Vector)  { a.dir = d }
func (a *Arrow) ExpireTime() float64         { return a.expire }
func (a *Arrow) SetExpireTime(t float64)     { a.expire = t }

func (a *Arrow) Similar(other SimObject, tolerance float64) bool {
	o, ok := other.(*Arrow)
	if !ok {
		return false
	}
	return a.name == o.name && a.start.DistanceTo(o.start) <= tolerance
}

// Anchor is a fixed attachment point, drawn but never integrated.
type Anchor struct {
	name string
	pos  geom.Vector
}

func NewAnchor(name string, pos geom.Vector) *Anchor {
	return &Anchor{name: name, pos: pos}
}

func (a *Anchor) Name() string               { return a.name }
func (a *Anchor) Kind() Kind                 { return KindAnchor }
func (a *Anchor) Position() geom.Vector      { return a.pos }
func (a *Anchor) SetPosition(p geom.Vector)  { a.pos = p }
func (a *Anchor) ExpireTime() float64        { return math.Inf(1) }

func (a *Anchor) Similar(other SimObject, tolerance float64) bool {
	o, ok := other.(*Anchor)
	if !ok {
		return false
	}
	return a.name == o.name && a.pos.DistanceTo(o.pos) <= tolerance
}
