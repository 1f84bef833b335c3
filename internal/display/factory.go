package display

import (
	"github.com/myphysicslab/myphysicslab-sub000/internal/observe"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
)

// Builder constructs the display object for one sim object. A nil return
// means the object has no visual.
type Builder func(so ode.SimObject) DisplayObject

// Factory maps sim object kinds to builders.
type Factory struct {
	builders map[ode.Kind]Builder
}

func NewFactory() *Factory {
	f := &Factory{builders: make(map[ode.Kind]Builder)}
	f.Register(ode.KindPointMass, func(so ode.SimObject) DisplayObject {
		return NewShape(so.(*ode.PointMass))
	})
	f.Register(ode.KindSpring, func(so ode.SimObject) DisplayObject {
		return NewSpringCoil(so.(*ode.Spring))
	})
	f.Register(ode.KindArrow, func(so ode.SimObject) DisplayObject {
		return NewTrace(so.(*ode.Arrow))
	})
	f.Register(ode.KindAnchor, func(so ode.SimObject) DisplayObject {
		return NewFixture(so.(*ode.Anchor))
	})
	return f
}

func (f *Factory) Register(k ode.Kind, b Builder) {
	f.builders[k] = b
}

func (f *Factory) Build(so ode.SimObject) DisplayObject {
	if b, ok := f.builders[so.Kind()]; ok {
		return b(so)
	}
	return nil
}

// Mirror keeps a view's display objects in sync with a sim list by
// observing its add and remove events.
type Mirror struct {
	view    *SimView
	factory *Factory
}

func NewMirror(view *SimView, factory *Factory, list *ode.SimList) *Mirror {
	m := &Mirror{view: view, factory: factory}
	for _, so := range list.Objects() {
		if d := factory.Build(so); d != nil {
			view.Add(d)
		}
	}
	list.AddObserver(m)
	return m
}

func (m *Mirror) Observe(ev observe.Event) {
	so, ok := ev.Subject.(ode.SimObject)
	if !ok {
		return
	}
	switch ev.Name {
	case ode.ObjectAdded:
		if m.view.Find(so) == nil {
			if d := m.factory.Build(so); d != nil {
				m.view.Add(d)
			}
		}
	case ode.ObjectRemoved:
		if d := m.view.Find(so); d != nil {
			m.view.Remove(d)
		}
	}
}
