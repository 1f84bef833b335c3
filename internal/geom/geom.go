// Package geom provides the small 2D value types used throughout the
// simulation core: vectors, rectangles, and the affine map between screen
// and simulation coordinates.
package geom

import "math"

// Vector is a 2D point or displacement.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(f float64) Vector {
	return Vector{v.X * f, v.Y * f}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) DistanceTo(o Vector) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect is an axis-aligned rectangle in simulation coordinates,
// with Y increasing upward.
type Rect struct {
	Left, Bottom, Right, Top float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Top - r.Bottom }

func (r Rect) Center() Vector {
	return Vector{(r.Left + r.Right) / 2, (r.Bottom + r.Top) / 2}
}

func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// Centered returns a rectangle of the given size centered at c.
func Centered(c Vector, width, height float64) Rect {
	return Rect{
		Left:   c.X - width/2,
		Bottom: c.Y - height/2,
		Right:  c.X + width/2,
		Top:    c.Y + height/2,
	}
}

// ScreenRect is a pixel-space rectangle, with Y increasing downward.
type ScreenRect struct {
	X, Y, Width, Height float64
}

// CoordMap is the affine transform between screen pixels and simulation
// coordinates for one view. Screen Y grows downward, sim Y grows upward.
type CoordMap struct {
	originX float64 // screen x of sim origin
	originY float64 // screen y of sim origin
	scaleX  float64 // pixels per sim unit
	scaleY  float64
}

// MapRects builds the CoordMap that shows sim inside screen. The two axes
// scale independently; callers wanting square aspect pass rects with
// matching ratios.
func MapRects(screen ScreenRect, sim Rect) CoordMap {
	sx := screen.Width / sim.Width()
	sy := screen.Height / sim.Height()
	return CoordMap{
		originX: screen.X - sim.Left*sx,
		originY: screen.Y + sim.Top*sy,
		scaleX:  sx,
		scaleY:  sy,
	}
}

func (m CoordMap) ToScreen(p Vector) Vector {
	return Vector{
		X: m.originX + p.X*m.scaleX,
		Y: m.originY - p.Y*m.scaleY,
	}
}

func (m CoordMap) ToSim(p Vector) Vector {
	return Vector{
		X: (p.X - m.originX) / m.scaleX,
		Y: (m.originY - p.Y) / m.scaleY,
	}
}

// ScaleX reports the horizontal pixels-per-sim-unit factor.
func (m CoordMap) ScaleX() float64 { return m.scaleX }

// ScaleY reports the vertical pixels-per-sim-unit factor.
func (m CoordMap) ScaleY() float64 { return m.scaleY }
