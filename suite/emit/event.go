// Package emit provides the per-node event layer for probatio test trees.
//
// Every node owns a Dispatcher. Events emitted on a node run that node's
// listeners first and are then forwarded, unmodified, to the parent
// dispatcher, recursively up to the root. A listener registered at or above
// a node therefore observes every event from that node or its descendants,
// in emission order.
//
// Sinks (logging, buffering, OpenTelemetry, metrics) attach to a dispatcher
// with Pipe and receive the full bubbled stream.
package emit

// Event is a single occurrence in a node's lifecycle.
//
// Events bubble upward unchanged: Origin always names the node whose
// dispatcher first emitted the event, no matter how many ancestors the
// event passed through on the way up.
type Event struct {
	// Name is the event name, e.g. "start", "pass", "fail", "state".
	Name string

	// Origin identifies the node that emitted the event.
	Origin string

	// Args carries the event payload. Contents depend on Name:
	//   - "state": new state, previous state
	//   - "pass": the body's result
	//   - "fail": the error
	//   - "reset": the previous state
	Args []any
}

// Handler processes a single event. Handlers registered for a specific
// event name see only that name; wildcard handlers see everything and can
// switch on Event.Name.
type Handler func(Event)
