package lab

import (
	"testing"

	"github.com/myphysicslab/myphysicslab-sub000/internal/config"
)

func TestRegistryNames(t *testing.T) {
	names := Names()
	want := map[string]bool{"pendulum": false, "spring_mass": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("%s not registered", n)
		}
	}
}

func TestNewUnknownSim(t *testing.T) {
	if _, err := New("frictionless_ramp"); err == nil {
		t.Error("unknown name should error")
	}
}

func TestRunPendulum(t *testing.T) {
	l, err := New("pendulum")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(l, "rk4", 0.01, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Times) != 100 {
		t.Fatalf("%d samples, want 100", len(res.Times))
	}
	if res.Times[0] != 0.01 {
		t.Errorf("first sample at t=%g, want 0.01", res.Times[0])
	}
	angles := res.Column("ANGLE")
	if angles == nil {
		t.Fatal("no ANGLE column")
	}
	if res.Column("NO_SUCH") != nil {
		t.Error("missing column should be nil")
	}
	if res.Metrics["steps"] != 100 {
		t.Errorf("steps metric %g, want 100", res.Metrics["steps"])
	}
	if _, ok := res.Metrics["final_total_energy"]; !ok {
		t.Error("energy metrics missing for an energy system")
	}
}

func TestApplyConfig(t *testing.T) {
	l, err := New("pendulum")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		Sim: "pendulum", Solver: "rk4", Dt: 0.01, Duration: 1,
		Params:    map[string]float64{"gravity": 1.62},
		InitState: map[string]float64{"ANGLE": 2.0},
	}
	if err := Apply(l, cfg); err != nil {
		t.Fatal(err)
	}
	v, err := l.System.Vars().ByName("ANGLE")
	if err != nil {
		t.Fatal(err)
	}
	if v.Value() != 2.0 {
		t.Errorf("angle %g, want 2", v.Value())
	}

	// reset returns to the configured state, not the built-in default
	if _, err := Run(l, "rk4", 0.01, 0.5); err != nil {
		t.Fatal(err)
	}
	l.System.Reset()
	if v.Value() != 2.0 {
		t.Errorf("reset angle %g, want 2", v.Value())
	}

	bad := &config.Config{Sim: "pendulum", Dt: 0.01, Duration: 1,
		InitState: map[string]float64{"NO_SUCH": 1}}
	if err := Apply(l, bad); err == nil {
		t.Error("unknown variable should error")
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	l, err := New("spring_mass")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Run(l, "rk4", 0, 1.0); err == nil {
		t.Error("zero dt should error")
	}
	if _, err := Run(l, "simplectic", 0.01, 1.0); err == nil {
		t.Error("unknown solver should error")
	}
}
