package vars

import (
	"errors"
	"math"
	"testing"

	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
)

func newTestList(t *testing.T) *List {
	t.Helper()
	l, err := NewList(
		[]string{"POSITION", "VELOCITY", "TIME"},
		[]string{"position", "velocity", "time"},
	)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}
	return l
}

func TestSequenceDiscontinuous(t *testing.T) {
	l := newTestList(t)

	if err := l.SetValue(0, 3, false); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if err := l.SetValue(1, -2, false); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	wantSeq := []int{1, 1, 0}
	for i, want := range wantSeq {
		v, _ := l.Variable(i)
		if v.Sequence() != want {
			t.Errorf("var %d: sequence = %d, want %d", i, v.Sequence(), want)
		}
	}

	// Changing velocity again bumps only velocity.
	if err := l.SetValue(1, -2.1, false); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	v, _ := l.Variable(1)
	if v.Sequence() != 2 {
		t.Errorf("velocity sequence = %d, want 2", v.Sequence())
	}
	v, _ = l.Variable(0)
	if v.Sequence() != 1 {
		t.Errorf("position sequence = %d, want 1", v.Sequence())
	}
}

func TestSequenceContinuous(t *testing.T) {
	l := newTestList(t)

	for i := 0; i < 5; i++ {
		if err := l.SetValue(0, float64(i)*0.1, true); err != nil {
			t.Fatalf("SetValue failed: %v", err)
		}
	}

	v, _ := l.Variable(0)
	if v.Sequence() != 0 {
		t.Errorf("continuous changes bumped sequence to %d", v.Sequence())
	}
}

func TestSequenceUnchangedValue(t *testing.T) {
	l := newTestList(t)

	l.SetValue(0, 5, false)
	l.SetValue(0, 5, false)

	v, _ := l.Variable(0)
	if v.Sequence() != 1 {
		t.Errorf("sequence = %d, want 1 (same-value set must not bump)", v.Sequence())
	}
}

func TestNaNRejection(t *testing.T) {
	l := newTestList(t)
	l.SetValue(0, 7, false)

	err := l.SetValue(0, math.NaN(), false)
	if !errors.Is(err, ErrNaN) {
		t.Fatalf("expected ErrNaN, got %v", err)
	}

	v, _ := l.Variable(0)
	if v.Value() != 7 {
		t.Errorf("value changed to %g after rejected NaN", v.Value())
	}
	if v.Sequence() != 1 {
		t.Errorf("sequence changed to %d after rejected NaN", v.Sequence())
	}
}

func TestSetValuesPartial(t *testing.T) {
	l, err := NewList(
		[]string{"A", "B", "C", "D", "E"},
		nil,
	)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}
	if err := l.SetValues([]float64{10, 20, 30, 40, 50}, false); err != nil {
		t.Fatalf("SetValues failed: %v", err)
	}

	if err := l.SetValues([]float64{1, 2}, false); err != nil {
		t.Fatalf("partial SetValues failed: %v", err)
	}

	want := []float64{1, 2, 30, 40, 50}
	got := l.Values(true)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("values[%d] = %g, want %g", i, got[i], want[i])
		}
	}

	if err := l.SetValues(make([]float64, 6), false); !errors.Is(err, ErrLength) {
		t.Errorf("expected ErrLength for oversized input, got %v", err)
	}
}

func TestDeleteReusesSlots(t *testing.T) {
	l, err := NewList([]string{"A", "B", "C", "D"}, nil)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}

	if err := l.DeleteVariables(1, 2); err != nil {
		t.Fatalf("DeleteVariables failed: %v", err)
	}
	if l.NumVariables() != 4 {
		t.Errorf("NumVariables = %d, want 4 (deleted slots still count)", l.NumVariables())
	}
	if _, err := l.ByName("B"); err == nil {
		t.Error("deleted variable still found by name")
	}

	first, err := l.AddVariables([]string{"X", "Y"}, nil)
	if err != nil {
		t.Fatalf("AddVariables failed: %v", err)
	}
	if first != 1 {
		t.Errorf("reused slot index = %d, want 1", first)
	}

	// Untouched variables keep their indices.
	a, _ := l.ByName("A")
	d, _ := l.ByName("D")
	if a.Index() != 0 || d.Index() != 3 {
		t.Errorf("indices shifted: A=%d D=%d", a.Index(), d.Index())
	}
}

func TestAddVariableRejectsCollisions(t *testing.T) {
	l := newTestList(t)

	tests := []struct {
		name    string
		varName string
		wantErr error
	}{
		{"duplicate", "POSITION", ErrDuplicateName},
		{"reserved", "DELETED", ErrBadName},
		{"bad chars", "foo-bar", ErrBadName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.AddVariables([]string{tt.varName}, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddVariables(%q) err = %v, want %v", tt.varName, err, tt.wantErr)
			}
		})
	}
}

func TestTimeVariable(t *testing.T) {
	l := newTestList(t)

	if l.TimeIndex() != 2 {
		t.Fatalf("TimeIndex = %d, want 2", l.TimeIndex())
	}
	if err := l.SetTime(1.5); err != nil {
		t.Fatalf("SetTime failed: %v", err)
	}
	tm, err := l.Time()
	if err != nil || tm != 1.5 {
		t.Errorf("Time() = %g, %v, want 1.5", tm, err)
	}

	noTime, _ := NewList([]string{"A"}, nil)
	if noTime.TimeIndex() != -1 {
		t.Errorf("TimeIndex = %d, want -1", noTime.TimeIndex())
	}
	if err := noTime.SetTime(1); !errors.Is(err, ErrNoTime) {
		t.Errorf("expected ErrNoTime, got %v", err)
	}
}

func TestIncrSequenceBlanket(t *testing.T) {
	l := newTestList(t)
	l.SetValue(0, 1, false)

	if err := l.IncrSequence(); err != nil {
		t.Fatalf("IncrSequence failed: %v", err)
	}

	wantSeq := []int{2, 1, 1}
	for i, want := range wantSeq {
		v, _ := l.Variable(i)
		if v.Sequence() != want {
			t.Errorf("var %d: sequence = %d, want %d", i, v.Sequence(), want)
		}
	}
}

func TestValuesExcludesComputed(t *testing.T) {
	l, _ := NewList([]string{"A", "B", "C"}, nil)
	v, _ := l.Variable(1)
	v.SetComputed(true)
	l.SetValues([]float64{1, 2, 3}, false)

	all := l.Values(true)
	if len(all) != 3 {
		t.Fatalf("Values(true) len = %d, want 3", len(all))
	}
	some := l.Values(false)
	if len(some) != 2 || some[0] != 1 || some[1] != 3 {
		t.Errorf("Values(false) = %v, want [1 3]", some)
	}
}

type eventRecorder struct {
	names []string
}

func (r *eventRecorder) Observe(e observe.Event) {
	r.names = append(r.names, e.Name)
}

func TestVarsModifiedBroadcast(t *testing.T) {
	l := newTestList(t)
	rec := &eventRecorder{}
	l.AddObserver(rec)

	l.AddVariables([]string{"EXTRA"}, nil)
	l.DeleteVariables(3, 1)

	if got := len(rec.names); got != 2 {
		t.Fatalf("got %d events, want 2", got)
	}
	for _, n := range rec.names {
		if n != VarsModified {
			t.Errorf("event %q, want %q", n, VarsModified)
		}
	}
}
