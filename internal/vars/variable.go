// Package vars implements the ordered, indexable set of named state
// variables that backs every simulation. A List is a simulation's full
// state vector at an instant; each Variable carries a sequence number that
// increments only on discontinuous changes, which time-series consumers
// use to suppress spurious connecting lines.
package vars

import (
	"fmt"
	"strings"
)

// Reserved variable names.
const (
	// DeletedName marks a slot whose variable was deleted. Deleted slots
	// keep their index so other variables' indices stay stable, and are
	// reused by later additions.
	DeletedName = "DELETED"

	// TimeName identifies the simulation-time variable. A List detects it
	// by name when the variable is added.
	TimeName = "TIME"
)

// Variable is one named scalar component of a simulation's state.
type Variable struct {
	name      string
	localName string
	value     float64
	seq       int
	computed  bool
	index     int
}

// NewVariable creates a variable with the given language-independent name
// (uppercased, underscored) and localized display name. The value starts
// at zero with sequence zero.
func NewVariable(name, localName string) (*Variable, error) {
	n, err := ValidName(name)
	if err != nil {
		return nil, err
	}
	if localName == "" {
		localName = strings.ToLower(n)
	}
	return &Variable{name: n, localName: localName, index: -1}, nil
}

// ValidName canonicalizes name to the uppercased, underscored form and
// rejects names that are empty or contain characters outside [A-Z0-9_].
func ValidName(name string) (string, error) {
	n := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	if n == "" {
		return "", fmt.Errorf("%w: empty name", ErrBadName)
	}
	for _, c := range n {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return "", fmt.Errorf("%w: %q", ErrBadName, name)
		}
	}
	return n, nil
}

func (v *Variable) Name() string      { return v.name }
func (v *Variable) LocalName() string { return v.localName }
func (v *Variable) Value() float64    { return v.value }

// Sequence reports the discontinuity counter. It increments exactly when
// the value changes discontinuously, never for continuous (integrated)
// changes.
func (v *Variable) Sequence() int { return v.seq }

// IsComputed reports whether the value is derived from other state
// (e.g. an energy) rather than integrated.
func (v *Variable) IsComputed() bool { return v.computed }

func (v *Variable) SetComputed(computed bool) { v.computed = computed }

// Index reports the variable's position in its owning List, or -1 if it
// has not been added to one.
func (v *Variable) Index() int { return v.index }

func (v *Variable) isDeleted() bool { return v.name == DeletedName }

func (v *Variable) incrSequence() { v.seq++ }

// setValue stores val. A discontinuous change bumps the sequence number;
// a continuous one never does, regardless of the value.
func (v *Variable) setValue(val float64, continuous bool) {
	if !continuous && v.value != val {
		v.seq++
	}
	v.value = val
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s=%g", v.name, v.value)
}
