package display

import (
	"math"

	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// Shape displays a single mass object as a filled disk centered on the
// mass position. Dragable by default.
type Shape struct {
	mass     *ode.PointMass
	radius   float64
	dragable bool
}

func NewShape(mass *ode.PointMass) *Shape {
	r := mass.Radius()
	if r <= 0 {
		r = 0.2
	}
	return &Shape{mass: mass, radius: r, dragable: true}
}

func (s *Shape) Position() geom.Vector     { return s.mass.Position() }
func (s *Shape) SetPosition(p geom.Vector) { s.mass.SetPosition(p) }

func (s *Shape) Contains(p geom.Vector) bool {
	return p.DistanceTo(s.mass.Position()) <= s.radius
}

func (s *Shape) IsDragable() bool        { return s.dragable }
func (s *Shape) SetDragable(b bool)      { s.dragable = b }
func (s *Shape) Radius() float64         { return s.radius }
func (s *Shape) SetRadius(r float64)     { s.radius = r }
func (s *Shape) DragPoints() []geom.Vector {
	return []geom.Vector{{X: 0, Y: 0}}
}

func (s *Shape) BodyToWorld(p geom.Vector) geom.Vector {
	return s.mass.Position().Add(p)
}

func (s *Shape) MassObjects() []ode.SimObject {
	return []ode.SimObject{s.mass}
}

// SpringCoil displays a spring as a line between its endpoints. A spring
// connects two bodies, so it is never dragable.
type SpringCoil struct {
	spring *ode.Spring
	width  float64
}

func NewSpringCoil(spring *ode.Spring) *SpringCoil {
	return &SpringCoil{spring: spring, width: 0.3}
}

func (c *SpringCoil) Position() geom.Vector     { return c.spring.Position() }
func (c *SpringCoil) SetPosition(p geom.Vector) {}

// Contains tests distance from the spring's axis segment.
func (c *SpringCoil) Contains(p geom.Vector) bool {
	a := c.spring.Start()
	b := c.spring.End()
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.DistanceTo(a) <= c.width
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	nearest := a.Add(ab.Scale(t))
	return p.DistanceTo(nearest) <= c.width
}

func (c *SpringCoil) IsDragable() bool { return false }

func (c *SpringCoil) DragPoints() []geom.Vector { return nil }

func (c *SpringCoil) BodyToWorld(p geom.Vector) geom.Vector {
	return c.spring.Position().Add(p)
}

func (c *SpringCoil) MassObjects() []ode.SimObject {
	return []ode.SimObject{c.spring}
}

// Marker displays an anchor or other fixed point. Opaque: it has no mass
// objects, so pointer hits select it by containment alone.
type Marker struct {
	pos      geom.Vector
	radius   float64
	dragable bool
	onMove   func(geom.Vector)
}

func NewMarker(pos geom.Vector, radius float64) *Marker {
	return &Marker{pos: pos, radius: radius}
}

func (m *Marker) Position() geom.Vector { return m.pos }

func (m *Marker) SetPosition(p geom.Vector) {
	m.pos = p
	if m.onMove != nil {
		m.onMove(p)
	}
}

// OnMove registers a callback invoked after every SetPosition.
func (m *Marker) OnMove(fn func(geom.Vector)) { m.onMove = fn }

func (m *Marker) Contains(p geom.Vector) bool {
	return p.DistanceTo(m.pos) <= m.radius
}

func (m *Marker) IsDragable() bool          { return m.dragable }
func (m *Marker) SetDragable(b bool)        { m.dragable = b }
func (m *Marker) DragPoints() []geom.Vector { return []geom.Vector{{}} }

func (m *Marker) BodyToWorld(p geom.Vector) geom.Vector {
	return m.pos.Add(p)
}

func (m *Marker) MassObjects() []ode.SimObject { return nil }

// Fixture displays a fixed anchor point. Not dragable; the backing
// anchor never moves during integration.
type Fixture struct {
	anchor *ode.Anchor
}

func NewFixture(anchor *ode.Anchor) *Fixture { return &Fixture{anchor: anchor} }

func (f *Fixture) Position() geom.Vector     { return f.anchor.Position() }
func (f *Fixture) SetPosition(p geom.Vector) {}

func (f *Fixture) Contains(p geom.Vector) bool { return false }

func (f *Fixture) IsDragable() bool          { return false }
func (f *Fixture) DragPoints() []geom.Vector { return nil }
func (f *Fixture) BodyToWorld(p geom.Vector) geom.Vector {
	return f.anchor.Position().Add(p)
}
func (f *Fixture) MassObjects() []ode.SimObject {
	return []ode.SimObject{f.anchor}
}

// Trace displays an arrow or trail segment. Not dragable.
type Trace struct {
	arrow *ode.Arrow
}

func NewTrace(arrow *ode.Arrow) *Trace { return &Trace{arrow: arrow} }

func (t *Trace) Position() geom.Vector     { return t.arrow.Position() }
func (t *Trace) SetPosition(p geom.Vector) {}

func (t *Trace) Contains(p geom.Vector) bool { return false }

func (t *Trace) IsDragable() bool              { return false }
func (t *Trace) DragPoints() []geom.Vector     { return nil }
func (t *Trace) BodyToWorld(p geom.Vector) geom.Vector {
	return t.arrow.Position().Add(p)
}
func (t *Trace) MassObjects() []ode.SimObject {
	return []ode.SimObject{t.arrow}
}
