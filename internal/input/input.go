// Package input maps raw pointer and key events to simulation actions:
// the EventHandler contract a simulation implements, the per-gesture
// Tracker that finds and drives the nearest dragable object, the Panner
// that translates a view's visible rectangle, and the Controller that
// owns the dispatch between them.
package input

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// Key codes used by simulation key handlers, matching the common
// platform encoding for arrow keys.
const (
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
)

// Modifiers is the state of the modifier keys during an event.
type Modifiers struct {
	Control bool
	Meta    bool
	Shift   bool
	Alt     bool
}

// Equals reports whether both combinations match exactly on every key.
func (m Modifiers) Equals(o Modifiers) bool { return m == o }

// EventHandler is implemented per simulation to decide how drag and key
// gestures affect its state. The caller guarantees the per-gesture order
// StartDrag, zero or more MouseDrag, one FinishDrag. HandleKeyEvent is
// independent of gestures.
type EventHandler interface {
	// StartDrag offers a gesture to the simulation. obj is the physical
	// object under the pointer, or nil when the gesture started on empty
	// space. location is in simulation coordinates, offset is the
	// pointer-to-object-position displacement at gesture start, and
	// dragBody is the chosen body-coordinate attachment point (nil when
	// there is no object). Returning false declines the gesture; the
	// caller then positions the display object directly. Never an error:
	// an unrecognized obj just returns false.
	StartDrag(obj ode.SimObject, location, offset geom.Vector, dragBody *geom.Vector, mods Modifiers) bool

	MouseDrag(obj ode.SimObject, location, offset geom.Vector, mods Modifiers)

	FinishDrag(obj ode.SimObject, location, offset geom.Vector)

	// HandleKeyEvent reports a key press or release. keyCode follows the
	// platform adapter's encoding.
	HandleKeyEvent(keyCode int, pressed bool, mods Modifiers)
}
