// Package display defines the geometry-facing surface between simulations
// and front-ends: display objects that can be hit-tested and dragged,
// views that map simulation coordinates to screen pixels, and containers
// that hold views in draw order. Actual pixel drawing lives in the tui
// and gui adapters, which consume these types.
package display

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// DisplayObject is the geometric face of something drawn in a view. The
// input layer queries it to decide what a pointer gesture targets.
type DisplayObject interface {
	Position() geom.Vector
	SetPosition(p geom.Vector)

	// Contains reports whether p (simulation coordinates) is inside the
	// object's extent.
	Contains(p geom.Vector) bool

	// IsDragable reports whether this object responds to drags at all.
	IsDragable() bool

	// DragPoints lists the attachment candidates in body coordinates.
	DragPoints() []geom.Vector

	// BodyToWorld maps a body-coordinate point to world (simulation)
	// coordinates at the object's current position.
	BodyToWorld(p geom.Vector) geom.Vector

	// MassObjects lists the physical objects backing this display object.
	// Zero means an opaque UI decoration (selected by containment, not
	// proximity); more than one means the object is never dragable.
	MassObjects() []ode.SimObject
}

// View is one rectangular window onto simulation space.
type View interface {
	CoordMap() geom.CoordMap
	SimRect() geom.Rect
	SetSimRect(r geom.Rect)

	// DisplayObjects lists the view's objects in draw order
	// (back-to-front).
	DisplayObjects() []DisplayObject
}

// Container holds views in back-to-front order with one designated focus
// view that receives pans and coordinate fallbacks.
type Container interface {
	Views() []View
	FocusView() View
}
