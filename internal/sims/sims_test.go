package sims

import (
	"math"
	"testing"

	"github.com/myphysicslab/myphysicslab-sub000/internal/advance"
	"github.com/myphysicslab/myphysicslab-sub000/internal/geom"
	"github.com/myphysicslab/myphysicslab-sub000/internal/input"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/solver"
)

func TestPendulumEnergyConservation(t *testing.T) {
	p, err := NewPendulum()
	if err != nil {
		t.Fatal(err)
	}
	adv := advance.New(p, solver.NewRungeKutta(p))
	e0 := p.EnergyInfo().Total()
	for i := 0; i < 400; i++ {
		if err := adv.Advance(0.01, nil); err != nil {
			t.Fatal(err)
		}
	}
	e1 := p.EnergyInfo().Total()
	if math.Abs(e1-e0) > 1e-6 {
		t.Errorf("energy drifted from %g to %g", e0, e1)
	}
}

func TestPendulumEquilibrium(t *testing.T) {
	p, err := NewPendulum()
	if err != nil {
		t.Fatal(err)
	}
	va := p.Vars()
	if err := va.SetValue(pendAngle, 0, false); err != nil {
		t.Fatal(err)
	}
	p.ModifyObjects()
	adv := advance.New(p, solver.NewRungeKutta(p))
	for i := 0; i < 100; i++ {
		if err := adv.Advance(0.025, nil); err != nil {
			t.Fatal(err)
		}
	}
	theta, _ := va.Value(pendAngle)
	if theta != 0 {
		t.Errorf("pendulum at rest moved to angle %g", theta)
	}
}

func TestPendulumDragFreezesMotion(t *testing.T) {
	p, err := NewPendulum()
	if err != nil {
		t.Fatal(err)
	}
	if !p.StartDrag(p.Bob(), geom.Vector{}, geom.Vector{}, nil, input.Modifiers{}) {
		t.Fatal("bob drag refused")
	}
	va := p.Vars()
	theta0, _ := va.Value(pendAngle)
	adv := advance.New(p, solver.NewRungeKutta(p))
	if err := adv.Advance(0.025, nil); err != nil {
		t.Fatal(err)
	}
	theta1, _ := va.Value(pendAngle)
	if theta1 != theta0 {
		t.Error("dragging should freeze the angle")
	}
	if p.Time() != 0.025 {
		t.Error("time should still advance while dragging")
	}
	p.FinishDrag(p.Bob(), geom.Vector{}, geom.Vector{})
}

func TestPendulumDragSetsAngle(t *testing.T) {
	p, err := NewPendulum()
	if err != nil {
		t.Fatal(err)
	}
	p.StartDrag(p.Bob(), geom.Vector{}, geom.Vector{}, nil, input.Modifiers{})
	// pointer straight right of the pivot is a quarter turn
	p.MouseDrag(p.Bob(), geom.Vector{X: 1, Y: 0}, geom.Vector{}, input.Modifiers{})
	va := p.Vars()
	theta, _ := va.Value(pendAngle)
	if math.Abs(theta-math.Pi/2) > 1e-12 {
		t.Errorf("angle %g, want pi/2", theta)
	}
	omega, _ := va.Value(pendAngularVelocity)
	if omega != 0 {
		t.Error("drag should zero angular velocity")
	}
	got := p.Bob().Position()
	if got.DistanceTo(geom.Vector{X: 1, Y: 0}) > 1e-12 {
		t.Errorf("bob at %v, want (1,0)", got)
	}
}

func TestPendulumRejectsForeignObject(t *testing.T) {
	p, err := NewPendulum()
	if err != nil {
		t.Fatal(err)
	}
	anchor := ode.NewAnchor("other", geom.Vector{})
	if p.StartDrag(anchor, geom.Vector{}, geom.Vector{}, nil, input.Modifiers{}) {
		t.Error("foreign object accepted")
	}
}

func TestPendulumSetParam(t *testing.T) {
	p, err := NewPendulum()
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"gravity", 1.6, false},
		{"length", 2.0, false},
		{"length", -1, true},
		{"mass", 0, true},
		{"bogus", 1, true},
	}
	for _, c := range cases {
		err := p.SetParam(c.name, c.value)
		if (err != nil) != c.wantErr {
			t.Errorf("SetParam(%q, %g) err=%v, wantErr=%v", c.name, c.value, err, c.wantErr)
		}
	}
	if p.Params()["gravity"] != 1.6 {
		t.Error("gravity not applied")
	}
	if p.rod.RestLength() != 2.0 {
		t.Errorf("rod rest length %g, want 2 after length change", p.rod.RestLength())
	}
	v, _ := p.Vars().Variable(pendAngle)
	if v.Sequence() == 0 {
		t.Error("parameter change should bump sequences")
	}
}

func TestSpringMassOscillation(t *testing.T) {
	s, err := NewSpringMass()
	if err != nil {
		t.Fatal(err)
	}
	adv := advance.New(s, solver.NewRungeKutta(s))
	e0 := s.EnergyInfo().Total()
	// half a period brings the block to the opposite extreme
	period := 2 * math.Pi * math.Sqrt(s.Params()["mass"]/s.Params()["stiffness"])
	steps := int(period / 2 / 0.001)
	for i := 0; i < steps; i++ {
		if err := adv.Advance(0.001, nil); err != nil {
			t.Fatal(err)
		}
	}
	x, _ := s.Vars().Value(smPosition)
	rest := s.Params()["rest_length"] - 3 // wall at x=-3
	if math.Abs(x-(rest-1)) > 0.01 {
		t.Errorf("block at %g, want near %g", x, rest-1)
	}
	if math.Abs(s.EnergyInfo().Total()-e0) > 1e-6 {
		t.Error("energy drifted")
	}
}

func TestSpringMassDragSpawnsArrow(t *testing.T) {
	s, err := NewSpringMass()
	if err != nil {
		t.Fatal(err)
	}
	s.StartDrag(s.Block(), geom.Vector{}, geom.Vector{}, nil, input.Modifiers{})
	s.MouseDrag(s.Block(), geom.Vector{X: 1, Y: 0}, geom.Vector{}, input.Modifiers{})
	if s.SimObjects().ByName("spring_force") == nil {
		t.Fatal("drag should spawn a force arrow")
	}
	// a nearby second drag replaces the arrow instead of stacking
	s.MouseDrag(s.Block(), geom.Vector{X: 1.01, Y: 0}, geom.Vector{}, input.Modifiers{})
	count := 0
	for _, o := range s.SimObjects().Objects() {
		if o.Kind() == ode.KindArrow {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%d arrows, want 1", count)
	}
	s.FinishDrag(s.Block(), geom.Vector{X: 1.01, Y: 0}, geom.Vector{})

	// the arrow expires once simulation time passes its lifetime
	adv := advance.New(s, solver.NewRungeKutta(s))
	for i := 0; i < 30; i++ {
		if err := adv.Advance(0.025, nil); err != nil {
			t.Fatal(err)
		}
	}
	if s.SimObjects().ByName("spring_force") != nil {
		t.Error("expired arrow not purged")
	}
}

func TestSpringMassResetRestoresInitialState(t *testing.T) {
	s, err := NewSpringMass()
	if err != nil {
		t.Fatal(err)
	}
	x0, _ := s.Vars().Value(smPosition)
	adv := advance.New(s, solver.NewRungeKutta(s))
	for i := 0; i < 10; i++ {
		if err := adv.Advance(0.025, nil); err != nil {
			t.Fatal(err)
		}
	}
	s.Reset()
	x1, _ := s.Vars().Value(smPosition)
	if x1 != x0 {
		t.Errorf("position %g after reset, want %g", x1, x0)
	}
	if s.Time() != 0 {
		t.Errorf("time %g after reset, want 0", s.Time())
	}
	if s.Block().Position().X != x0 {
		t.Error("block not resynchronized after reset")
	}
}
