package tui

import (
	"math"
	"strings"

	"github.com/myphysicslab/myphysicslab-sub000/internal/display"
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// cellCanvas is a character grid the sim view renders into. Cells are
// addressed in the same coordinates the mouse reports, so pointer events
// map straight through the view's CoordMap.
type cellCanvas struct {
	w, h  int
	cells [][]rune
}

func newCellCanvas(w, h int) *cellCanvas {
	cells := make([][]rune, h)
	for i := range cells {
		cells[i] = make([]rune, w)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}
	return &cellCanvas{w: w, h: h, cells: cells}
}

func (c *cellCanvas) set(x, y int, r rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = r
	}
}

func (c *cellCanvas) line(x1, y1, x2, y2 int, r rune) {
	dx := intAbs(x2 - x1)
	dy := intAbs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(x1, y1, r)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (c *cellCanvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// drawView renders every display object of the view into the canvas
// through the view's coordinate map.
func (c *cellCanvas) drawView(view *display.SimView) {
	m := view.CoordMap()
	for _, obj := range view.DisplayObjects() {
		c.drawObject(obj, m)
	}
}

func (c *cellCanvas) drawObject(obj display.DisplayObject, m geom.CoordMap) {
	masses := obj.MassObjects()
	if len(masses) == 0 {
		p := m.ToScreen(obj.Position())
		c.set(int(p.X), int(p.Y), '▼')
		return
	}
	for _, so := range masses {
		switch so.Kind() {
		case ode.KindPointMass:
			p := m.ToScreen(so.Position())
			c.set(int(p.X), int(p.Y), '⬤')
		case ode.KindSpring:
			sp := so.(*ode.Spring)
			a := m.ToScreen(sp.Start())
			b := m.ToScreen(sp.End())
			if sp.Stiffness() == 0 {
				c.line(int(a.X), int(a.Y), int(b.X), int(b.Y), '·')
			} else {
				c.line(int(a.X), int(a.Y), int(b.X), int(b.Y), '~')
			}
		case ode.KindArrow:
			ar := so.(*ode.Arrow)
			a := m.ToScreen(ar.Position())
			b := m.ToScreen(ar.Position().Add(ar.Direction()))
			c.line(int(a.X), int(a.Y), int(b.X), int(b.Y), '-')
			c.set(int(b.X), int(b.Y), arrowHead(ar.Direction()))
		case ode.KindAnchor:
			p := m.ToScreen(so.Position())
			c.set(int(p.X), int(p.Y), '▼')
		}
	}
}

func arrowHead(dir geom.Vector) rune {
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		if dir.X >= 0 {
			return '▸'
		}
		return '◂'
	}
	if dir.Y >= 0 {
		return '▴'
	}
	return '▾'
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
