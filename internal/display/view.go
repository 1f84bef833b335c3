package display

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// SimRectChanged is broadcast by SimView when its simulation rectangle
// moves or resizes.
const SimRectChanged = "SIM_RECT_CHANGED"

// SimView is the standard View: a simulation rectangle mapped onto a
// screen rectangle, holding display objects in draw order.
type SimView struct {
	observe.Broadcaster

	simRect    geom.Rect
	screenRect geom.ScreenRect
	objs       []DisplayObject
}

func NewSimView(simRect geom.Rect, screenRect geom.ScreenRect) *SimView {
	return &SimView{simRect: simRect, screenRect: screenRect}
}

func (v *SimView) CoordMap() geom.CoordMap {
	return geom.MapRects(v.screenRect, v.simRect)
}

func (v *SimView) SimRect() geom.Rect { return v.simRect }

func (v *SimView) SetSimRect(r geom.Rect) {
	if r == v.simRect {
		return
	}
	v.simRect = r
	v.Broadcast(SimRectChanged, v)
}

func (v *SimView) ScreenRect() geom.ScreenRect { return v.screenRect }

func (v *SimView) SetScreenRect(r geom.ScreenRect) { v.screenRect = r }

func (v *SimView) DisplayObjects() []DisplayObject {
	out := make([]DisplayObject, len(v.objs))
	copy(out, v.objs)
	return out
}

// Add appends obj to the front of the draw order (drawn last).
func (v *SimView) Add(obj DisplayObject) {
	v.objs = append(v.objs, obj)
}

func (v *SimView) Remove(obj DisplayObject) {
	for i, o := range v.objs {
		if o == obj {
			v.objs = append(v.objs[:i], v.objs[i+1:]...)
			return
		}
	}
}

// Find returns the display object backed by the given sim object, or nil.
func (v *SimView) Find(so ode.SimObject) DisplayObject {
	for _, o := range v.objs {
		for _, m := range o.MassObjects() {
			if m == so {
				return o
			}
		}
	}
	return nil
}

// Canvas is the standard Container: an ordered stack of views with one
// focus view.
type Canvas struct {
	views []View
	focus View
}

func NewCanvas() *Canvas { return &Canvas{} }

func (c *Canvas) Views() []View {
	out := make([]View, len(c.views))
	copy(out, c.views)
	return out
}

func (c *Canvas) FocusView() View { return c.focus }

// AddView appends v on top of the stack. The first view added becomes
// the focus view.
func (c *Canvas) AddView(v View) {
	c.views = append(c.views, v)
	if c.focus == nil {
		c.focus = v
	}
}

func (c *Canvas) SetFocusView(v View) { c.focus = v }
