package suite

import "github.com/probatio/probatio/suite/emit"

// Transition declares a set of edges: any state in From may move to any
// state in To.
type Transition struct {
	From []State
	To   []State
}

// machine validates and tracks discrete lifecycle transitions. Every
// successful transition is announced on the owning node's dispatcher: first
// the EventState meta-event with (new, prev), then an event named exactly
// like the new state, carrying the caller's payload.
type machine struct {
	initial     State
	current     State
	transitions []Transition
	events      *emit.Dispatcher
}

// newMachine creates a machine in the given initial state. The dispatcher
// receives transition events and may be shared with the owning node.
func newMachine(initial State, transitions []Transition, events *emit.Dispatcher) *machine {
	return &machine{
		initial:     initial,
		current:     initial,
		transitions: transitions,
		events:      events,
	}
}

// Current returns the machine's current state.
func (m *machine) Current() State { return m.current }

// Set moves the machine to next. Setting the current state again is a
// no-op. A request with no matching edge fails with a TransitionError and
// leaves the state unchanged.
func (m *machine) Set(next State, args ...any) error {
	if next == m.current {
		return nil
	}

	allowed := m.sourcesFor(next)
	if len(allowed) == 0 {
		return &TransitionError{Attempted: next, Current: m.current}
	}
	if !containsState(allowed, m.current) {
		return &TransitionError{Attempted: next, Current: m.current, Allowed: allowed}
	}

	prev := m.current
	m.current = next
	m.events.Emit(EventState, next, prev)
	m.events.Emit(string(next), args...)
	return nil
}

// Reset unconditionally restores the initial state, bypassing edge
// validation, and emits EventReset with the previous state.
func (m *machine) Reset() {
	prev := m.current
	m.current = m.initial
	m.events.Emit(EventReset, prev)
}

// sourcesFor collects every state from which next is reachable.
func (m *machine) sourcesFor(next State) []State {
	var allowed []State
	for _, t := range m.transitions {
		if !containsState(t.To, next) {
			continue
		}
		for _, s := range t.From {
			if !containsState(allowed, s) {
				allowed = append(allowed, s)
			}
		}
	}
	return allowed
}

func containsState(states []State, s State) bool {
	for _, c := range states {
		if c == s {
			return true
		}
	}
	return false
}
