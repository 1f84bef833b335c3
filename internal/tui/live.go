// Package tui is the terminal front-end: a live simulation view with
// mouse dragging, panning, and keyboard control.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/myphysicslab/myphysicslab-sub000/internal/advance"
	"github.com/myphysicslab/myphysicslab-sub000/internal/display"
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/history"
	"github.com/myphysicslab/myphysicslab-sub000/internal/input"
	"github.com/myphysicslab/myphysicslab-sub000/internal/lab"
	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/solver"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	frameInterval = 33 * time.Millisecond
	historyLen    = 120
	sparkWidth    = 32
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model for a live run. Pointer events route
// through the input controller, so dragging the bob or alt-dragging to
// pan behaves the same as in the graphical front-end.
type Model struct {
	lab    *lab.Lab
	adv    *advance.SimpleAdvance
	memos  *advance.MemoList
	rec    *history.VarsRecorder
	view   *display.SimView
	canvas *display.Canvas
	ctrl   *input.Controller

	dt     float64
	speed  float64
	paused bool
	err    error

	// recentering animates the view back to its home rectangle with a
	// spring instead of snapping.
	homeRect    geom.Rect
	recentering bool
	spring      harmonica.Spring
	cx, cy      float64
	cvx, cvy    float64

	width  int
	height int
}

func NewModel(l *lab.Lab, ds solver.DiffEqSolver, dt float64) *Model {
	view := display.NewSimView(l.SimRect, geom.ScreenRect{Width: 80, Height: 20})
	display.NewMirror(view, display.NewFactory(), l.System.SimObjects())
	canvas := display.NewCanvas()
	canvas.AddView(view)

	ctrl := input.NewController(canvas, l.Handler)

	m := &Model{
		lab:      l,
		adv:      advance.New(l.System, ds),
		memos:    &advance.MemoList{},
		rec:      history.NewVarsRecorder(l.System.Vars(), historyLen),
		view:     view,
		canvas:   canvas,
		ctrl:     ctrl,
		dt:       dt,
		speed:    1.0,
		homeRect: l.SimRect,
		spring:   harmonica.NewSpring(harmonica.FPS(30), 6.0, 0.9),
		width:    80,
		height:   24,
	}
	m.memos.Add(m.rec)

	// the controller force-finishes any drag when the sim reports an
	// error
	if b, ok := l.System.(interface{ AddObserver(o observe.Observer) }); ok {
		b.AddObserver(ctrl)
	}
	return m
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cw, ch := m.canvasSize()
		m.view.SetScreenRect(geom.ScreenRect{Width: float64(cw), Height: float64(ch)})
		return m, nil
	case tickMsg:
		m.step()
		return m, tick()
	}
	return m, nil
}

func (m *Model) canvasSize() (int, int) {
	cw := m.width - 4
	ch := m.height - 8
	if cw < 40 {
		cw = 40
	}
	if ch < 10 {
		ch = 10
	}
	return cw, ch
}

func (m *Model) step() {
	if m.recentering {
		target := m.homeRect.Center()
		m.cx, m.cvx = m.spring.Update(m.cx, m.cvx, target.X)
		m.cy, m.cvy = m.spring.Update(m.cy, m.cvy, target.Y)
		m.view.SetSimRect(geom.Centered(geom.Vector{X: m.cx, Y: m.cy},
			m.homeRect.Width(), m.homeRect.Height()))
		center := geom.Vector{X: m.cx, Y: m.cy}
		velocity := geom.Vector{X: m.cvx, Y: m.cvy}
		if center.DistanceTo(target) < 1e-3 && velocity.Length() < 1e-3 {
			m.view.SetSimRect(m.homeRect)
			m.recentering = false
		}
	}
	if m.paused || m.err != nil {
		return
	}
	steps := int(m.speed * frameInterval.Seconds() / m.dt)
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		if err := m.adv.Advance(m.dt, m.memos); err != nil {
			m.err = err
			m.paused = true
			m.ctrl.Observe(observe.Event{Name: ode.EventError, Subject: err})
			return
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.adv.Reset()
		m.err = nil
		m.paused = false
	case "c":
		start := m.view.SimRect().Center()
		m.cx, m.cy = start.X, start.Y
		m.cvx, m.cvy = 0, 0
		m.recentering = true
	case "+", "=":
		if m.speed < 16 {
			m.speed *= 2
		}
	case "-", "_":
		if m.speed > 0.25 {
			m.speed /= 2
		}
	case "left":
		m.ctrl.KeyEvent(input.KeyLeft, true, input.Modifiers{Alt: msg.Alt}, input.TargetCanvas)
	case "right":
		m.ctrl.KeyEvent(input.KeyRight, true, input.Modifiers{Alt: msg.Alt}, input.TargetCanvas)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	screen := geom.Vector{X: float64(msg.X - 2), Y: float64(msg.Y - 4)}
	mods := input.Modifiers{Shift: msg.Shift, Alt: msg.Alt, Control: msg.Ctrl}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.ctrl.MouseDown(screen, mods)
		}
	case tea.MouseActionMotion:
		m.ctrl.MouseMove(screen, mods)
	case tea.MouseActionRelease:
		m.ctrl.MouseUp()
	}
}

func (m *Model) View() string {
	cw, ch := m.canvasSize()
	cells := newCellCanvas(cw, ch)
	cells.drawView(m.view)

	var b strings.Builder

	status := green.Render("● running")
	if m.err != nil {
		status = red.Render("✕ " + m.err.Error())
	} else if m.paused {
		status = yellow.Render("○ paused")
	}
	b.WriteString(fmt.Sprintf("\n  %s  %s  %s\n",
		cyan.Render(m.lab.Name), status,
		dim.Render(fmt.Sprintf("t=%.2fs  %gx", m.lab.System.Time(), m.speed))))

	if es, ok := m.lab.System.(ode.EnergySystem); ok {
		e := es.EnergyInfo()
		b.WriteString("  " + dim.Render(e.String()) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, row := range cells.cells {
		b.WriteString("  " + string(row) + "\n")
	}

	if col := m.rec.Samples.Column(0); len(col) > 1 {
		b.WriteString("  " + dim.Render("x ") + cyan.Render(sparkline(col, sparkWidth)) + "\n")
	}

	b.WriteString(dim.Render("  drag objects with the mouse, alt-drag pans") + "\n")
	b.WriteString(dimmer.Render("  space pause  r reset  c center  ± speed  ←→ nudge  q quit") + "\n")
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	span := maxVal - minVal
	if span == 0 {
		span = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / span * 7)
		if idx > 7 {
			idx = 7
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Run starts the live TUI for the given lab.
func Run(l *lab.Lab, solverName string, dt float64) error {
	ds, err := lab.NewSolver(solverName, l.System)
	if err != nil {
		return err
	}
	m := NewModel(l, ds, dt)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
