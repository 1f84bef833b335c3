// Package observe provides the event broadcast mechanism shared by the
// simulation state containers. Subjects embed a Broadcaster; interested
// parties register an Observer and receive synchronous notifications.
package observe

// Event identifies a state change on a subject. Name is one of the
// event-name constants defined by the broadcasting package.
type Event struct {
	Name    string
	Subject any
}

// Observer receives events from a Broadcaster. Observe is called
// synchronously on the broadcasting goroutine.
type Observer interface {
	Observe(e Event)
}

// Broadcaster maintains an observer list and fans events out to it.
// The zero value is ready to use.
type Broadcaster struct {
	observers []Observer
}

func (b *Broadcaster) AddObserver(o Observer) {
	for _, existing := range b.observers {
		if existing == o {
			return
		}
	}
	b.observers = append(b.observers, o)
}

func (b *Broadcaster) RemoveObserver(o Observer) {
	for i, existing := range b.observers {
		if existing == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

func (b *Broadcaster) Broadcast(name string, subject any) {
	e := Event{Name: name, Subject: subject}
	for _, o := range b.observers {
		o.Observe(e)
	}
}
