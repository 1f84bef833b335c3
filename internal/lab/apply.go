package lab

import (
	"fmt"

	"github.com/myphysicslab/myphysicslab-sub000/internal/config"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// Apply pushes a config's parameter and initial-state overrides into the
// lab's system, then re-saves the initial state so Reset returns to the
// configured starting point.
func Apply(l *Lab, cfg *config.Config) error {
	if len(cfg.Params) > 0 {
		p, ok := l.System.(ode.Parameterized)
		if !ok {
			return fmt.Errorf("%s has no tunable parameters", l.Name)
		}
		for name, value := range cfg.Params {
			if err := p.SetParam(name, value); err != nil {
				return err
			}
		}
	}
	va := l.System.Vars()
	for name, value := range cfg.InitState {
		v, err := va.ByName(name)
		if err != nil {
			return fmt.Errorf("init_state: %w", err)
		}
		if err := va.SetValue(v.Index(), value, false); err != nil {
			return err
		}
	}
	l.System.ModifyObjects()
	l.System.SaveInitialState()
	return nil
}
