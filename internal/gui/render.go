package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/myphysicslab/myphysicslab-sub000/internal/display"
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	m := a.view.CoordMap()
	for _, obj := range a.view.DisplayObjects() {
		a.drawObject(obj, m)
	}
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawObject(obj display.DisplayObject, m geom.CoordMap) {
	masses := obj.MassObjects()
	if len(masses) == 0 {
		drawAnchor(m.ToScreen(obj.Position()))
		return
	}
	for _, so := range masses {
		switch so.Kind() {
		case ode.KindPointMass:
			pm := so.(*ode.PointMass)
			p := m.ToScreen(pm.Position())
			r := float32(pm.Radius() * m.ScaleX())
			rl.DrawCircleV(toRL(p), r, colObject)
		case ode.KindSpring:
			drawSpring(so.(*ode.Spring), m)
		case ode.KindArrow:
			drawArrow(so.(*ode.Arrow), m)
		case ode.KindAnchor:
			drawAnchor(m.ToScreen(so.Position()))
		}
	}
}

// drawSpring renders a zigzag coil between the endpoints; zero-stiffness
// springs are rigid rods and draw as a plain line.
func drawSpring(sp *ode.Spring, m geom.CoordMap) {
	a := m.ToScreen(sp.Start())
	b := m.ToScreen(sp.End())
	if sp.Stiffness() == 0 {
		rl.DrawLineEx(toRL(a), toRL(b), 2, colSpring)
		return
	}
	const coils = 8
	const amplitude = 8.0
	dir := b.Sub(a)
	length := dir.Length()
	if length < 1e-9 {
		return
	}
	unit := dir.Scale(1 / length)
	normal := geom.Vector{X: -unit.Y, Y: unit.X}
	prev := a
	segments := coils * 4
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		offset := amplitude * math.Sin(t*float64(coils)*2*math.Pi)
		next := a.Add(dir.Scale(t)).Add(normal.Scale(offset))
		if i == segments {
			next = b
		}
		rl.DrawLineEx(toRL(prev), toRL(next), 2, colSpring)
		prev = next
	}
}

func drawArrow(ar *ode.Arrow, m geom.CoordMap) {
	a := m.ToScreen(ar.Position())
	b := m.ToScreen(ar.Position().Add(ar.Direction()))
	rl.DrawLineEx(toRL(a), toRL(b), 3, colForce)
	dir := b.Sub(a)
	length := dir.Length()
	if length < 1e-9 {
		return
	}
	unit := dir.Scale(1 / length)
	normal := geom.Vector{X: -unit.Y, Y: unit.X}
	tip := toRL(b)
	left := toRL(b.Sub(unit.Scale(10)).Add(normal.Scale(5)))
	right := toRL(b.Sub(unit.Scale(10)).Sub(normal.Scale(5)))
	rl.DrawTriangle(tip, left, right, colForce)
}

func drawAnchor(p geom.Vector) {
	top := rl.NewVector2(float32(p.X), float32(p.Y))
	left := rl.NewVector2(float32(p.X-8), float32(p.Y-12))
	right := rl.NewVector2(float32(p.X+8), float32(p.Y-12))
	rl.DrawTriangle(top, left, right, colAnchor)
}

func (a *App) drawHUD() {
	status := "running"
	col := colText
	if a.err != nil {
		status = a.err.Error()
		col = colError
	} else if a.paused {
		status = "paused"
	}
	rl.DrawText(fmt.Sprintf("%s  t=%.2fs  %s", a.lab.Name, a.lab.System.Time(), status),
		16, 14, 20, col)

	if es, ok := a.lab.System.(ode.EnergySystem); ok {
		rl.DrawText(es.EnergyInfo().String(), 16, 40, 18, colTextDim)
	}
	rl.DrawText("drag objects, alt-drag pans | space pause  r reset  c center",
		16, windowHeight-28, 18, colTextDim)
}

func toRL(p geom.Vector) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}
