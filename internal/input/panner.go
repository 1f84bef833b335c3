package input

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/display"
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
)

// Panner translates a view's visible simulation rectangle opposite to
// pointer motion. It captures the coordinate map and rectangle at gesture
// start: SetSimRect changes the view's map, so converting deltas through
// a fresh map would feed back into itself.
type Panner struct {
	view        display.View
	startScreen geom.Vector
	startMap    geom.CoordMap
	startRect   geom.Rect
}

func NewPanner(view display.View, startScreen geom.Vector) *Panner {
	return &Panner{
		view:        view,
		startScreen: startScreen,
		startMap:    view.CoordMap(),
		startRect:   view.SimRect(),
	}
}

func (p *Panner) MouseDrag(screen geom.Vector) {
	d := screen.Sub(p.startScreen)
	center := p.startRect.Center().Add(geom.Vector{
		X: -d.X / p.startMap.ScaleX(),
		Y: d.Y / p.startMap.ScaleY(),
	})
	p.view.SetSimRect(geom.Centered(center, p.startRect.Width(), p.startRect.Height()))
}

func (p *Panner) FinishDrag() {}
