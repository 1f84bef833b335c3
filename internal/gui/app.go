// Package gui is the graphical front-end, a raylib window with direct
// mouse dragging and alt-drag panning.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/myphysicslab/myphysicslab-sub000/internal/advance"
	"github.com/myphysicslab/myphysicslab-sub000/internal/display"
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/input"
	"github.com/myphysicslab/myphysicslab-sub000/internal/lab"
	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

const (
	windowWidth  = 1000
	windowHeight = 700
	targetFPS    = 60
)

var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colObject  = rl.NewColor(220, 220, 220, 255)
	colSpring  = rl.NewColor(140, 140, 140, 255)
	colAnchor  = rl.NewColor(180, 180, 180, 255)
	colForce   = rl.NewColor(255, 180, 60, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
	colError   = rl.NewColor(220, 60, 60, 255)
)

type App struct {
	lab    *lab.Lab
	adv    *advance.SimpleAdvance
	view   *display.SimView
	canvas *display.Canvas
	ctrl   *input.Controller

	dt     float64
	paused bool
	err    error

	dragging bool
}

func NewApp(l *lab.Lab, solverName string, dt float64) (*App, error) {
	ds, err := lab.NewSolver(solverName, l.System)
	if err != nil {
		return nil, err
	}
	view := display.NewSimView(l.SimRect,
		geom.ScreenRect{Width: windowWidth, Height: windowHeight})
	display.NewMirror(view, display.NewFactory(), l.System.SimObjects())
	canvas := display.NewCanvas()
	canvas.AddView(view)
	ctrl := input.NewController(canvas, l.Handler)

	a := &App{
		lab:    l,
		adv:    advance.New(l.System, ds),
		view:   view,
		canvas: canvas,
		ctrl:   ctrl,
		dt:     dt,
	}
	if b, ok := l.System.(interface{ AddObserver(o observe.Observer) }); ok {
		b.AddObserver(ctrl)
	}
	return a, nil
}

// Run opens the window and drives the main loop until close.
func Run(l *lab.Lab, solverName string, dt float64) error {
	app, err := NewApp(l, solverName, dt)
	if err != nil {
		return err
	}
	rl.InitWindow(windowWidth, windowHeight, "myphysicslab")
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0)

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.step()
		app.draw()
	}
	return nil
}

func modifiers() input.Modifiers {
	return input.Modifiers{
		Control: rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Shift:   rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Alt:     rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
	}
}

func (a *App) handleInput() {
	pos := rl.GetMousePosition()
	screen := geom.Vector{X: float64(pos.X), Y: float64(pos.Y)}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.ctrl.MouseDown(screen, modifiers())
		a.dragging = true
	}
	if a.dragging {
		a.ctrl.MouseMove(screen, modifiers())
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.ctrl.MouseUp()
		a.dragging = false
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.adv.Reset()
		a.err = nil
		a.paused = false
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.view.SetSimRect(a.lab.SimRect)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.ctrl.KeyEvent(input.KeyLeft, true, modifiers(), input.TargetCanvas)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.ctrl.KeyEvent(input.KeyRight, true, modifiers(), input.TargetCanvas)
	}
}

func (a *App) step() {
	if a.paused || a.err != nil {
		return
	}
	frame := 1.0 / float64(targetFPS)
	steps := int(frame / a.dt)
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		if err := a.adv.Advance(a.dt, nil); err != nil {
			a.err = err
			a.paused = true
			a.ctrl.Observe(observe.Event{Name: ode.EventError, Subject: err})
			return
		}
	}
}
