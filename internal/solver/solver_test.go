package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/vars"
)

// decaySim is dx/dt = -x with a time variable.
type decaySim struct {
	*ode.Base
	failEval bool
}

func newDecaySim(t *testing.T, x0 float64) *decaySim {
	t.Helper()
	l, err := vars.NewList([]string{"X", "TIME"}, nil)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}
	s := &decaySim{Base: ode.NewBase(l)}
	s.Vars().SetValue(0, x0, false)
	return s
}

func (s *decaySim) Evaluate(state, change []float64, timeStep float64) error {
	if s.failEval {
		return errors.New("singularity")
	}
	change[0] = -state[0]
	change[1] = 1
	return nil
}

func (s *decaySim) ModifyObjects() {}
func (s *decaySim) Reset()         { s.Base.Reset() }

func TestRungeKuttaDecay(t *testing.T) {
	s := newDecaySim(t, 1.0)
	rk := NewRungeKutta(s)

	dt := 0.1
	for i := 0; i < 10; i++ {
		if err := rk.Step(dt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	x, _ := s.Vars().Value(0)
	want := math.Exp(-1.0)
	if math.Abs(x-want) > 1e-6 {
		t.Errorf("x(1) = %.8f, want %.8f", x, want)
	}

	tm, _ := s.Vars().Time()
	if math.Abs(tm-1.0) > 1e-12 {
		t.Errorf("time = %g, want 1.0", tm)
	}
}

func TestModifiedEulerDecay(t *testing.T) {
	s := newDecaySim(t, 1.0)
	me := NewModifiedEuler(s)

	dt := 0.01
	for i := 0; i < 100; i++ {
		if err := me.Step(dt); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	x, _ := s.Vars().Value(0)
	want := math.Exp(-1.0)
	if math.Abs(x-want) > 1e-4 {
		t.Errorf("x(1) = %.8f, want ~%.8f", x, want)
	}
}

func TestStepKeepsSequenceContinuous(t *testing.T) {
	s := newDecaySim(t, 1.0)
	rk := NewRungeKutta(s)

	v, _ := s.Vars().Variable(0)
	seqBefore := v.Sequence()

	if err := rk.Step(0.05); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if v.Sequence() != seqBefore {
		t.Errorf("integration bumped sequence from %d to %d", seqBefore, v.Sequence())
	}
}

func TestStepEvaluateFailure(t *testing.T) {
	s := newDecaySim(t, 1.0)
	s.failEval = true
	rk := NewRungeKutta(s)

	before, _ := s.Vars().Value(0)
	err := rk.Step(0.1)
	if !errors.Is(err, ErrStepFailed) {
		t.Fatalf("expected ErrStepFailed, got %v", err)
	}
	after, _ := s.Vars().Value(0)
	if before != after {
		t.Error("failed step mutated state")
	}
}
