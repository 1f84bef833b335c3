package config

// Presets are the built-in named configurations, keyed by simulation
// then preset name.
var Presets = map[string]map[string]*Config{
	"pendulum": {
		"small": {
			Sim: "pendulum", Solver: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: map[string]float64{"ANGLE": 0.2, "ANGULAR_VELOCITY": 0.0},
		},
		"large": {
			Sim: "pendulum", Solver: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: map[string]float64{"ANGLE": 2.5, "ANGULAR_VELOCITY": 0.0},
		},
		"spinning": {
			Sim: "pendulum", Solver: "rk4", Dt: 0.01, Duration: 30.0,
			InitState: map[string]float64{"ANGLE": 0.1, "ANGULAR_VELOCITY": 8.0},
		},
		"damped": {
			Sim: "pendulum", Solver: "rk4", Dt: 0.01, Duration: 30.0,
			Params:    map[string]float64{"damping": 0.3},
			InitState: map[string]float64{"ANGLE": 2.0},
		},
		"moon": {
			Sim: "pendulum", Solver: "rk4", Dt: 0.01, Duration: 20.0,
			Params:    map[string]float64{"gravity": 1.62},
			InitState: map[string]float64{"ANGLE": 0.5},
		},
	},
	"spring_mass": {
		"bounce": {
			Sim: "spring_mass", Solver: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: map[string]float64{"POSITION": 1.5, "VELOCITY": 0.0},
		},
		"fast": {
			Sim: "spring_mass", Solver: "rk4", Dt: 0.005, Duration: 10.0,
			InitState: map[string]float64{"POSITION": 0.5, "VELOCITY": 5.0},
		},
		"stiff": {
			Sim: "spring_mass", Solver: "rk4", Dt: 0.002, Duration: 10.0,
			Params:    map[string]float64{"stiffness": 50.0},
			InitState: map[string]float64{"POSITION": 0.5},
		},
	},
}

func GetPreset(sim, preset string) *Config {
	simPresets, ok := Presets[sim]
	if !ok {
		return nil
	}
	cfg, ok := simPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(sim string) []string {
	simPresets, ok := Presets[sim]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(simPresets))
	for name := range simPresets {
		names = append(names, name)
	}
	return names
}
