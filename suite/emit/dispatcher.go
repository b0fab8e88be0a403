package emit

import (
	"reflect"
	"sync"
)

// Wildcard subscribes a handler to every event on a dispatcher.
const Wildcard = ""

// Dispatcher routes events for one node and bubbles them to its parent.
//
// Listeners run in registration order. After the local listeners, the same
// event is handed to the parent dispatcher's listeners, recursively to the
// root. There is no way to halt propagation.
//
// Dispatchers are safe for concurrent use; an external runner may drive
// sibling nodes from separate goroutines while a shared ancestor collects
// their events.
type Dispatcher struct {
	origin string

	mu        sync.Mutex
	parent    *Dispatcher
	listeners []*listener
}

type listener struct {
	name string
	once bool
	fn   Handler
	id   uintptr
}

// NewDispatcher creates a dispatcher for the named origin. The parent link
// is set later, when the owning node is inserted into a tree.
func NewDispatcher(origin string) *Dispatcher {
	return &Dispatcher{origin: origin}
}

// Origin returns the node name this dispatcher emits under.
func (d *Dispatcher) Origin() string { return d.origin }

// SetParent links this dispatcher to the parent it forwards events to.
func (d *Dispatcher) SetParent(parent *Dispatcher) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parent = parent
}

// On registers a handler for the named event. The Wildcard name subscribes
// to all events. Panics if fn is nil.
func (d *Dispatcher) On(name string, fn Handler) {
	d.subscribe(name, fn, false)
}

// Once registers a handler that removes itself after its first invocation.
func (d *Dispatcher) Once(name string, fn Handler) {
	d.subscribe(name, fn, true)
}

func (d *Dispatcher) subscribe(name string, fn Handler, once bool) {
	if fn == nil {
		panic("emit: nil handler")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, &listener{
		name: name,
		once: once,
		fn:   fn,
		id:   reflect.ValueOf(fn).Pointer(),
	})
}

// Off removes the first listener registered for name with the same handler
// function. Name and handler must both match the original registration.
func (d *Dispatcher) Off(name string, fn Handler) {
	if fn == nil {
		return
	}
	id := reflect.ValueOf(fn).Pointer()
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l.name == name && l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Emit publishes an event originating at this dispatcher's node. Local
// listeners run first, then the event bubbles to the parent dispatcher.
func (d *Dispatcher) Emit(name string, args ...any) {
	d.dispatch(Event{Name: name, Origin: d.origin, Args: args})
}

// dispatch runs this dispatcher's listeners for ev and forwards it upward.
// The event keeps its original Origin while bubbling.
func (d *Dispatcher) dispatch(ev Event) {
	d.mu.Lock()
	matched := make([]*listener, 0, len(d.listeners))
	kept := d.listeners[:0]
	for _, l := range d.listeners {
		if l.name == Wildcard || l.name == ev.Name {
			matched = append(matched, l)
			if l.once {
				continue
			}
		}
		kept = append(kept, l)
	}
	d.listeners = kept
	parent := d.parent
	d.mu.Unlock()

	for _, l := range matched {
		l.fn(ev)
	}
	if parent != nil {
		parent.dispatch(ev)
	}
}

// Pipe attaches a sink to the full event stream of this dispatcher,
// including events bubbled up from descendants.
func (d *Dispatcher) Pipe(s Sink) {
	d.On(Wildcard, s.Emit)
}
