// Package suite implements a hierarchical test-definition and execution
// core: an ordered tree of named test nodes, a validated lifecycle state
// machine per node, tree-wide skip/only resolution, and timed body
// execution with events that bubble to ancestors.
package suite

import (
	"fmt"
	"strings"
	"time"
)

// TransitionError reports a lifecycle transition request that is not in the
// node's edge set. The state is left unchanged.
type TransitionError struct {
	// Attempted is the requested target state.
	Attempted State

	// Current is the state the machine was in when the request failed.
	Current State

	// Allowed lists the source states from which Attempted is reachable.
	// Empty when no edge targets Attempted at all.
	Allowed []State
}

// Error implements the error interface.
func (e *TransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid move: no transition targets %q (current state %q)", e.Attempted, e.Current)
	}
	from := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		from[i] = string(s)
	}
	return fmt.Sprintf("invalid move to %q from %q: valid from %s", e.Attempted, e.Current, strings.Join(from, ", "))
}

// DuplicateNameError reports an attempt to insert a child whose name is
// already taken by a direct sibling.
type DuplicateNameError struct {
	// Name is the conflicting child name.
	Name string

	// Parent is the name of the node the insertion was attempted on.
	Parent string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name %q under %q", e.Name, e.Parent)
}

// ValidationError reports a value that does not satisfy the test-node
// shape (name, body, index, ended). It carries the offending value.
type ValidationError struct {
	// Value is the candidate that failed validation.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("not a test node: %v", e.Value)
}

// TimeoutError reports a body that did not settle within the configured
// timeout. The message names the elapsed delay in milliseconds.
type TimeoutError struct {
	// Timeout is the configured delay that expired.
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Timeout expired [%d]", e.Timeout.Milliseconds())
}
