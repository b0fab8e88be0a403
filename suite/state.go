package suite

// State is a discrete lifecycle state of a test node.
type State string

// Lifecycle states. A node starts pending, moves to in-progress when its
// body runs, and settles in exactly one terminal state. Only resetState
// returns a node to pending.
const (
	StatePending    State = "pending"
	StateInProgress State = "in-progress"
	StateSkipped    State = "skipped"
	StateIgnored    State = "ignored"
	StateTodo       State = "todo"
	StatePass       State = "pass"
	StateFail       State = "fail"
)

// Event names emitted by nodes beyond the state-name events themselves.
const (
	// EventState fires on every successful transition with
	// (newState, prevState) as payload.
	EventState = "state"

	// EventStart fires after the in-progress transition, before the body.
	EventStart = "start"

	// EventEnd fires after a terminal pass or fail transition.
	EventEnd = "end"

	// EventReset fires on resetState with the previous state as payload.
	EventReset = "reset"
)

// testTransitions is the edge set of a test node's lifecycle. No edge
// returns to pending; that path exists only through resetState.
var testTransitions = []Transition{
	{From: []State{StatePending}, To: []State{StateInProgress, StateSkipped, StateIgnored, StateTodo}},
	{From: []State{StateInProgress}, To: []State{StatePass, StateFail}},
}
