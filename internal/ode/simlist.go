package ode

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
)

// Events broadcast by a SimList.
const (
	ObjectAdded   = "OBJECT_ADDED"
	ObjectRemoved = "OBJECT_REMOVED"
)

// DefaultTolerance is the similarity distance within which a newly added
// object replaces an existing similar one.
const DefaultTolerance = 0.1

// SimList is the ordered set of SimObjects owned by one simulation.
// Adding an object that is similar to an existing one (within the list
// tolerance) removes the old one first, so ephemeral visualizations never
// accumulate.
type SimList struct {
	observe.Broadcaster
	objs      []SimObject
	tolerance float64
}

func NewSimList() *SimList {
	return &SimList{tolerance: DefaultTolerance}
}

func (l *SimList) SetTolerance(tol float64) { l.tolerance = tol }

func (l *SimList) Len() int { return len(l.objs) }

// Objects returns a copy of the object list in insertion order.
func (l *SimList) Objects() []SimObject {
	out := make([]SimObject, len(l.objs))
	copy(out, l.objs)
	return out
}

// Add appends obj, first removing any existing similar object.
func (l *SimList) Add(obj SimObject) {
	for _, existing := range l.objs {
		if existing != obj && existing.Similar(obj, l.tolerance) {
			l.Remove(existing)
			break
		}
	}
	for _, existing := range l.objs {
		if existing == obj {
			return
		}
	}
	l.objs = append(l.objs, obj)
	l.Broadcast(ObjectAdded, obj)
}

// Remove deletes obj from the list; unknown objects are ignored.
func (l *SimList) Remove(obj SimObject) {
	for i, existing := range l.objs {
		if existing == obj {
			l.objs = append(l.objs[:i], l.objs[i+1:]...)
			l.Broadcast(ObjectRemoved, obj)
			return
		}
	}
}

// RemoveTemporary purges every object whose expire time is at or before
// the given simulation time.
func (l *SimList) RemoveTemporary(time float64) {
	for i := len(l.objs) - 1; i >= 0; i-- {
		if l.objs[i].ExpireTime() <= time {
			obj := l.objs[i]
			l.objs = append(l.objs[:i], l.objs[i+1:]...)
			l.Broadcast(ObjectRemoved, obj)
		}
	}
}

// ByName returns the first object with the given name, or nil.
func (l *SimList) ByName(name string) SimObject {
	for _, obj := range l.objs {
		if obj.Name() == name {
			return obj
		}
	}
	return nil
}

// Contains reports whether obj is in the list.
func (l *SimList) Contains(obj SimObject) bool {
	for _, existing := range l.objs {
		if existing == obj {
			return true
		}
	}
	return false
}
