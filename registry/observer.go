package registry

import (
	"github.com/wippyai/wasmlink/resource"
)

// EventType identifies a resource lifecycle event.
type EventType uint8

const (
	// EventInserted fires when a new resource enters a module's tables.
	EventInserted EventType = iota
	// EventCloned fires when an existing resource gains a second handle.
	EventCloned
	// EventRemoved fires when a handle is removed but the resource stays
	// alive behind other handles.
	EventRemoved
	// EventReleased fires when the last handle is removed; Value carries
	// the underlying value the caller must finalize.
	EventReleased
)

// String returns the event type name for logging and display.
func (t EventType) String() string {
	switch t {
	case EventInserted:
		return "inserted"
	case EventCloned:
		return "cloned"
	case EventRemoved:
		return "removed"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Event describes one resource lifecycle transition.
type Event struct {
	Type     EventType
	ModuleID uint32
	Handle   resource.Handle
	Value    uint32
}

// Observer receives notifications about resource lifecycle events.
// Notifications are delivered after the registry lock is released, so an
// Observer may call back into the Registry.
type Observer interface {
	OnResourceEvent(Event)
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnResourceEvent(e)
	}
}
