package advance

import (
	"errors"
	"math"
	"testing"

	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/history"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/solver"
	"github.com/myphysicslab/myphysicslab-sub000/internal/vars"
)

// decaySim is dx/dt = -x; ModifyObjects mirrors x into a point mass.
type decaySim struct {
	*ode.Base
	mass        *ode.PointMass
	modifyCalls int
}

func newDecaySim(t *testing.T) *decaySim {
	t.Helper()
	l, err := vars.NewList([]string{"X", "TIME"}, nil)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}
	s := &decaySim{Base: ode.NewBase(l), mass: ode.NewPointMass("m", 1)}
	s.SimObjects().Add(s.mass)
	s.Vars().SetValue(0, 1.0, false)
	return s
}

func (s *decaySim) Evaluate(state, change []float64, timeStep float64) error {
	change[0] = -state[0]
	change[1] = 1
	return nil
}

func (s *decaySim) ModifyObjects() {
	s.modifyCalls++
	x, _ := s.Vars().Value(0)
	s.mass.SetPosition(geom.Vector{X: x})
}

func (s *decaySim) Reset() {
	s.Base.Reset()
	s.ModifyObjects()
}

func TestAdvanceScenario(t *testing.T) {
	s := newDecaySim(t)
	adv := New(s, solver.NewRungeKutta(s))

	rec := history.NewVarsRecorder(s.Vars(), 3)
	memos := &MemoList{}
	memos.Add(rec)

	for i := 0; i < 3; i++ {
		if err := adv.Advance(0.025, memos); err != nil {
			t.Fatalf("advance %d failed: %v", i, err)
		}
	}

	if rec.Samples.Len() != 3 {
		t.Fatalf("recorded %d samples, want 3", rec.Samples.Len())
	}

	times := rec.Samples.Column(1)
	wantTimes := []float64{0.025, 0.05, 0.075}
	for i, want := range wantTimes {
		if math.Abs(times[i]-want) > 1e-12 {
			t.Errorf("times[%d] = %g, want %g", i, times[i], want)
		}
	}

	xs := rec.Samples.Column(0)
	prev := 1.0
	for i, x := range xs {
		if x >= prev {
			t.Errorf("xs[%d] = %g, not decreasing from %g", i, x, prev)
		}
		prev = x
	}

	// Objects were synchronized after each step.
	if s.modifyCalls != 3 {
		t.Errorf("ModifyObjects called %d times, want 3", s.modifyCalls)
	}
	if got := s.mass.Position().X; math.Abs(got-xs[2]) > 1e-15 {
		t.Errorf("mass position %g does not reflect state %g", got, xs[2])
	}
}

func TestAdvancePurgesBeforeStep(t *testing.T) {
	s := newDecaySim(t)
	s.Vars().SetTime(1.0)
	arrow := ode.NewArrow("force", geom.Vector{}, geom.Vector{X: 1}, 0.5)
	s.SimObjects().Add(arrow)

	adv := New(s, solver.NewRungeKutta(s))
	if err := adv.Advance(0.025, nil); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if s.SimObjects().Contains(arrow) {
		t.Error("expired arrow survived advance")
	}
}

type failSolver struct{}

func (failSolver) Name() string         { return "fail" }
func (failSolver) Step(float64) error   { return solver.ErrStepFailed }

func TestAdvanceStepFailureIsFatal(t *testing.T) {
	s := newDecaySim(t)
	adv := New(s, failSolver{})

	calls := s.modifyCalls
	err := adv.Advance(0.025, nil)
	if !errors.Is(err, solver.ErrStepFailed) {
		t.Fatalf("expected ErrStepFailed, got %v", err)
	}
	if s.modifyCalls != calls {
		t.Error("ModifyObjects ran after a failed step")
	}
}

func TestCircularListWrap(t *testing.T) {
	c := history.NewCircularList(3)
	for i := 1; i <= 5; i++ {
		c.Append([]float64{float64(i)})
	}

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	want := []float64{3, 4, 5}
	for i, w := range want {
		if got := c.At(i)[0]; got != w {
			t.Errorf("At(%d) = %g, want %g", i, got, w)
		}
	}
	if got := c.Latest()[0]; got != 5 {
		t.Errorf("Latest = %g, want 5", got)
	}
}
