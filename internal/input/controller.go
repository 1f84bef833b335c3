package input

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/display"
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// KeyTarget identifies where a key event was aimed, so keystrokes meant
// for text inputs elsewhere are not stolen.
type KeyTarget int

const (
	TargetCanvas KeyTarget = iota
	TargetBody
	TargetOther
)

// Controller is the top-level input dispatcher. Per pointer-down it
// decides between panning the focus view and dragging a simulation
// object, emulates mouse gestures from a single touch, and forwards key
// events to the handler. It also observes the simulation: an error
// broadcast mid-gesture forces the drag to finish so input state never
// stays stuck on a failed step.
type Controller struct {
	container display.Container
	handler   EventHandler

	// panModifiers is the exact modifier combination that switches a
	// pointer-down into a pan. All four keys must match.
	panModifiers Modifiers
	panEnabled   bool

	tracker *Tracker
	panner  *Panner

	touches []int // active touch ids, oldest first
	mouseID int   // touch id currently emulating the mouse
}

func NewController(container display.Container, handler EventHandler) *Controller {
	return &Controller{
		container: container,
		handler:   handler,
		// alt-drag pans by default
		panModifiers: Modifiers{Alt: true},
		panEnabled:   true,
		mouseID:      -1,
	}
}

// SetPanModifiers sets the exact combination that triggers panning.
func (c *Controller) SetPanModifiers(m Modifiers) { c.panModifiers = m }

// SetPanEnabled turns the pan gesture on or off entirely.
func (c *Controller) SetPanEnabled(on bool) { c.panEnabled = on }

// Dragging reports whether a drag or pan gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.tracker != nil || c.panner != nil
}

func (c *Controller) MouseDown(screen geom.Vector, mods Modifiers) {
	// A lost mouse-up must not leave the handler mid-drag.
	c.finishGesture()
	if c.panEnabled && mods.Equals(c.panModifiers) {
		if focus := c.container.FocusView(); focus != nil {
			c.panner = NewPanner(focus, screen)
		}
		return
	}
	if t := FindNearestDragable(c.container, screen, c.handler); t != nil {
		c.tracker = t
		t.StartDrag(mods)
	}
}

func (c *Controller) MouseMove(screen geom.Vector, mods Modifiers) {
	switch {
	case c.panner != nil:
		c.panner.MouseDrag(screen)
	case c.tracker != nil:
		c.tracker.MouseDrag(screen, mods)
	}
}

func (c *Controller) MouseUp() {
	c.finishGesture()
}

// TouchStart treats the first active touch as a mouse-down. A second
// simultaneous touch cancels any gesture in progress, releasing control
// for native pinch and scroll handling.
func (c *Controller) TouchStart(id int, screen geom.Vector) {
	c.touches = append(c.touches, id)
	if len(c.touches) == 1 {
		c.mouseID = id
		c.MouseDown(screen, Modifiers{})
		return
	}
	c.mouseID = -1
	c.finishGesture()
}

func (c *Controller) TouchMove(id int, screen geom.Vector) {
	if id == c.mouseID {
		c.MouseMove(screen, Modifiers{})
	}
}

func (c *Controller) TouchEnd(id int) {
	for i, t := range c.touches {
		if t == id {
			c.touches = append(c.touches[:i], c.touches[i+1:]...)
			break
		}
	}
	if id == c.mouseID {
		c.mouseID = -1
		c.MouseUp()
	}
}

// KeyEvent forwards a key press or release to the handler when the event
// targeted the canvas or the document body.
func (c *Controller) KeyEvent(keyCode int, pressed bool, mods Modifiers, target KeyTarget) {
	if target == TargetOther || c.handler == nil {
		return
	}
	c.handler.HandleKeyEvent(keyCode, pressed, mods)
}

// Observe implements observe.Observer. A simulation error mid-gesture
// forces FinishDrag; the error itself still propagates through whatever
// reported it.
func (c *Controller) Observe(ev observe.Event) {
	if ev.Name == ode.EventError {
		c.finishGesture()
	}
}

func (c *Controller) finishGesture() {
	if c.panner != nil {
		c.panner.FinishDrag()
	}
	if c.tracker != nil {
		c.tracker.FinishDrag()
	}
	c.clearGesture()
}

func (c *Controller) clearGesture() {
	c.tracker = nil
	c.panner = nil
}
