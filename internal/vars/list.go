package vars

import (
	"fmt"
	"math"

	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
)

// VarsModified is broadcast whenever the set of variables changes
// (addition or deletion), not when values change.
const VarsModified = "VARS_MODIFIED"

// List is an ordered, name-unique collection of Variables representing one
// simulation's full state vector. Indices are stable across deletion:
// deleted slots are renamed to the DELETED sentinel and reused by later
// additions rather than removed.
type List struct {
	observe.Broadcaster
	vars    []*Variable
	timeIdx int
}

// NewList creates a list with one variable per name. localNames supplies
// display names positionally and may be shorter than names.
func NewList(names []string, localNames []string) (*List, error) {
	l := &List{timeIdx: -1}
	if _, err := l.AddVariables(names, localNames); err != nil {
		return nil, err
	}
	return l, nil
}

// NumVariables reports the slot count, counting deleted slots.
func (l *List) NumVariables() int { return len(l.vars) }

// AddVariable appends v, reusing the first deleted slot if one exists.
// Returns the index assigned to v.
func (l *List) AddVariable(v *Variable) (int, error) {
	if v.isDeleted() {
		return -1, fmt.Errorf("%w: %q is reserved", ErrBadName, DeletedName)
	}
	if _, err := l.findActive(v.name); err == nil {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateName, v.name)
	}
	idx := -1
	for i, existing := range l.vars {
		if existing.isDeleted() {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = len(l.vars)
		l.vars = append(l.vars, v)
	} else {
		l.vars[idx] = v
	}
	v.index = idx
	if v.name == TimeName && l.timeIdx < 0 {
		l.timeIdx = idx
	}
	l.Broadcast(VarsModified, l)
	return idx, nil
}

// AddVariables creates one variable per name and adds them as a contiguous
// block, reusing a run of deleted slots when one is long enough, otherwise
// growing the list. Returns the index of the first new variable.
func (l *List) AddVariables(names []string, localNames []string) (int, error) {
	if len(names) == 0 {
		return -1, fmt.Errorf("%w: no names", ErrBadName)
	}
	newVars := make([]*Variable, len(names))
	for i, name := range names {
		local := ""
		if i < len(localNames) {
			local = localNames[i]
		}
		v, err := NewVariable(name, local)
		if err != nil {
			return -1, err
		}
		if v.name == DeletedName {
			return -1, fmt.Errorf("%w: %q is reserved", ErrBadName, DeletedName)
		}
		if _, err := l.findActive(v.name); err == nil {
			return -1, fmt.Errorf("%w: %q", ErrDuplicateName, v.name)
		}
		for j := 0; j < i; j++ {
			if newVars[j].name == v.name {
				return -1, fmt.Errorf("%w: %q", ErrDuplicateName, v.name)
			}
		}
		newVars[i] = v
	}

	first := l.findDeletedRun(len(names))
	if first < 0 {
		first = len(l.vars)
		l.vars = append(l.vars, newVars...)
	} else {
		copy(l.vars[first:], newVars)
	}
	for i, v := range newVars {
		v.index = first + i
		if v.name == TimeName && l.timeIdx < 0 {
			l.timeIdx = v.index
		}
	}
	l.Broadcast(VarsModified, l)
	return first, nil
}

// findDeletedRun returns the start of the first run of at least count
// contiguous deleted slots, or -1.
func (l *List) findDeletedRun(count int) int {
	run := 0
	for i, v := range l.vars {
		if v.isDeleted() {
			run++
			if run == count {
				return i - count + 1
			}
		} else {
			run = 0
		}
	}
	return -1
}

// DeleteVariables marks count slots starting at index as deleted in place.
// The storage does not shrink, so other variables keep their indices.
func (l *List) DeleteVariables(index, count int) error {
	if count == 0 {
		return nil
	}
	if index < 0 || count < 0 || index+count > len(l.vars) {
		return fmt.Errorf("%w: delete [%d,%d)", ErrIndex, index, index+count)
	}
	for i := index; i < index+count; i++ {
		if i == l.timeIdx {
			l.timeIdx = -1
		}
		v := &Variable{name: DeletedName, localName: "deleted", index: i}
		l.vars[i] = v
	}
	l.Broadcast(VarsModified, l)
	return nil
}

// Variable returns the variable at index.
func (l *List) Variable(index int) (*Variable, error) {
	if index < 0 || index >= len(l.vars) {
		return nil, fmt.Errorf("%w: %d", ErrIndex, index)
	}
	return l.vars[index], nil
}

// ByName returns the active variable with the given name. Deleted slots
// are excluded from lookup.
func (l *List) ByName(name string) (*Variable, error) {
	n, err := ValidName(name)
	if err != nil {
		return nil, err
	}
	return l.findActive(n)
}

func (l *List) findActive(name string) (*Variable, error) {
	if name == DeletedName {
		return nil, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	for _, v := range l.vars {
		if v.name == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("vars: no variable named %q", name)
}

// Value returns the value at index.
func (l *List) Value(index int) (float64, error) {
	v, err := l.Variable(index)
	if err != nil {
		return 0, err
	}
	return v.value, nil
}

// Values returns the current values in index order. When includeComputed
// is false, computed variables are skipped and the result is shorter than
// NumVariables.
func (l *List) Values(includeComputed bool) []float64 {
	out := make([]float64, 0, len(l.vars))
	for _, v := range l.vars {
		if !includeComputed && v.computed {
			continue
		}
		out = append(out, v.value)
	}
	return out
}

// SetValue assigns value to the variable at index. NaN is rejected and
// leaves value and sequence unchanged. Continuous writes (mid-integration)
// never bump the sequence number; discontinuous writes (drags, resets,
// parameter changes) bump it when the value actually changes.
func (l *List) SetValue(index int, value float64, continuous bool) error {
	v, err := l.Variable(index)
	if err != nil {
		return err
	}
	if math.IsNaN(value) {
		return fmt.Errorf("%w: variable %q", ErrNaN, v.name)
	}
	v.setValue(value, continuous)
	return nil
}

// SetValues assigns values positionally. The input may be shorter than the
// variable count, in which case trailing variables are unchanged; a longer
// input is an error. Any NaN rejects the entire call before any slot is
// written.
func (l *List) SetValues(values []float64, continuous bool) error {
	if len(values) > len(l.vars) {
		return fmt.Errorf("%w: %d values for %d variables", ErrLength, len(values), len(l.vars))
	}
	for i, val := range values {
		if math.IsNaN(val) {
			return fmt.Errorf("%w: variable %q", ErrNaN, l.vars[i].name)
		}
	}
	for i, val := range values {
		l.vars[i].setValue(val, continuous)
	}
	return nil
}

// IncrSequence bumps the sequence number of the given variables; with no
// arguments it bumps every variable. Used when a parameter change or drag
// makes derived quantities discontinuous even though their stored value
// may not have changed yet.
func (l *List) IncrSequence(indices ...int) error {
	if len(indices) == 0 {
		for _, v := range l.vars {
			v.incrSequence()
		}
		return nil
	}
	for _, i := range indices {
		v, err := l.Variable(i)
		if err != nil {
			return err
		}
		v.incrSequence()
	}
	return nil
}

// TimeIndex reports the index of the TIME variable, or -1 if absent.
func (l *List) TimeIndex() int { return l.timeIdx }

// Time returns the current simulation time.
func (l *List) Time() (float64, error) {
	if l.timeIdx < 0 {
		return 0, ErrNoTime
	}
	return l.vars[l.timeIdx].value, nil
}

// SetTime sets the simulation time discontinuously.
func (l *List) SetTime(t float64) error {
	if l.timeIdx < 0 {
		return ErrNoTime
	}
	return l.SetValue(l.timeIdx, t, false)
}
