package input

import (
	"math"

	"github.com/myphysicslab/myphysicslab-sub000/internal/display"
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// Tracker drives one drag gesture against the object chosen by
// FindNearestDragable. It is created on pointer-down and discarded on
// pointer-up; no state survives the gesture.
type Tracker struct {
	dispObj display.DisplayObject // nil on the empty-space fallback
	simObj  ode.SimObject         // the single backing object, or nil
	view    display.View
	handler EventHandler

	loc        geom.Vector  // last pointer location, sim coords
	dragBody   *geom.Vector // chosen attachment point, body coords
	dragOffset geom.Vector  // start location minus object position

	handlerActive bool
}

// FindNearestDragable maps a screen-space pointer-down to the object it
// should drag. Views are scanned in container order with each view's
// display list walked front to back, keeping the globally closest drag
// point over every candidate. Ties go to the later candidate, so at equal
// distance the more-front object wins. An opaque object (one with no mass
// objects) that contains the pointer is accepted immediately without any
// distance comparison. Objects backed by more than one mass object are
// skipped as ambiguous.
//
// With no dragable object under the pointer, the container's focus view
// supplies simulation coordinates for an object-less gesture, but only
// when a handler exists to receive it; otherwise the result is nil and
// the gesture is inert.
func FindNearestDragable(container display.Container, startScreen geom.Vector, handler EventHandler) *Tracker {
	best := math.Inf(1)
	var bestObj display.DisplayObject
	var bestView display.View
	var bestLoc geom.Vector
	var bestBody *geom.Vector

search:
	for _, view := range container.Views() {
		m := view.CoordMap()
		startSim := m.ToSim(startScreen)
		objs := view.DisplayObjects()
		for i := len(objs) - 1; i >= 0; i-- {
			obj := objs[i]
			if !obj.IsDragable() {
				continue
			}
			masses := obj.MassObjects()
			if len(masses) > 1 {
				continue
			}
			if len(masses) == 0 {
				if obj.Contains(startSim) {
					bestObj = obj
					bestView = view
					bestLoc = startSim
					bestBody = nil
					break search
				}
				continue
			}
			for _, bp := range obj.DragPoints() {
				world := obj.BodyToWorld(bp)
				d := m.ToScreen(world).DistanceTo(startScreen)
				if d <= best {
					best = d
					bestObj = obj
					bestView = view
					bestLoc = startSim
					p := bp
					bestBody = &p
				}
			}
		}
	}

	if bestObj == nil {
		focus := container.FocusView()
		if focus == nil || handler == nil {
			return nil
		}
		return &Tracker{
			view:    focus,
			handler: handler,
			loc:     focus.CoordMap().ToSim(startScreen),
		}
	}

	t := &Tracker{
		dispObj:  bestObj,
		view:     bestView,
		handler:  handler,
		loc:      bestLoc,
		dragBody: bestBody,
	}
	if masses := bestObj.MassObjects(); len(masses) == 1 {
		t.simObj = masses[0]
	}
	t.dragOffset = bestLoc.Sub(bestObj.Position())
	return t
}

// Object returns the display object chosen for the gesture, or nil.
func (t *Tracker) Object() display.DisplayObject { return t.dispObj }

// Location returns the last known pointer location in sim coordinates.
func (t *Tracker) Location() geom.Vector { return t.loc }

func (t *Tracker) StartDrag(mods Modifiers) {
	if t.handler != nil {
		t.handlerActive = t.handler.StartDrag(t.simObj, t.loc, t.dragOffset, t.dragBody, mods)
	}
}

// MouseDrag routes a pointer move. The coordinate map is fetched fresh
// each call since panning or zooming may change it mid-gesture.
func (t *Tracker) MouseDrag(screen geom.Vector, mods Modifiers) {
	t.loc = t.view.CoordMap().ToSim(screen)
	if t.dispObj != nil && (t.simObj == nil || !t.handlerActive) {
		t.dispObj.SetPosition(t.loc.Sub(t.dragOffset))
	} else if t.handler != nil && t.handlerActive {
		t.handler.MouseDrag(t.simObj, t.loc, t.dragOffset, mods)
	}
}

// FinishDrag ends the gesture. It reuses the cached location because the
// final pointer-up (a touch end in particular) carries no coordinates.
func (t *Tracker) FinishDrag() {
	if t.handler != nil {
		t.handler.FinishDrag(t.simObj, t.loc, t.dragOffset)
	}
}
