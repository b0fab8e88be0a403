package suite

import (
	"fmt"
	"iter"
	"time"

	"github.com/probatio/probatio/suite/emit"
)

// defaultName is the placeholder used when construction omits a name.
const defaultName = "anonymous"

// Body is a node's test logic. It receives the run's execution context and
// returns either an immediate outcome or a *Future for a deferred one.
// Returning a *Future makes Run race it against the node's timeout.
type Body func(tc *TC) (any, error)

// Stats records the timing of a node's last run.
type Stats struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Node is one entry in a test tree: a leaf test or a group. It composes an
// ownership tree position with a lifecycle state machine and owns its own
// mutable run state (result, error, stats, execution context). Siblings
// never mutate each other; the only tree-wide mutation is the skip/only
// resolution pass performed on insertion.
type Node struct {
	name  string
	body  Body
	opts  Options
	index int

	tr     *Tree[*Node]
	fsm    *machine
	events *emit.Dispatcher

	ended  bool
	result any
	err    error
	stats  Stats
	tc     *TC

	// effectiveSkip is the resolved tree-wide value, distinct from the
	// explicit Options.Skip mark.
	effectiveSkip bool
}

// New constructs a detached node. Positional arguments are resolved by
// runtime type, in any order:
//   - string: the node name (placeholder when omitted)
//   - Body, func(*TC) (any, error) or func() (any, error): the body
//   - Options or *Options: configuration
//
// Any other argument type is a programmer error and panics.
//
// Example:
//
//	n := suite.New("answer", func() (any, error) { return 42, nil })
//	v, err := n.Run(context.Background()) // v == 42, state "pass"
func New(args ...any) *Node {
	name := defaultName
	var body Body
	var opts Options

	for _, a := range args {
		switch v := a.(type) {
		case nil:
		case string:
			name = v
		case Body:
			body = v
		case func(*TC) (any, error):
			body = v
		case func() (any, error):
			fn := v
			body = func(*TC) (any, error) { return fn() }
		case Options:
			opts = v
		case *Options:
			if v != nil {
				opts = *v
			}
		default:
			panic(fmt.Sprintf("suite: unsupported constructor argument %T", a))
		}
	}

	n := &Node{
		name:  name,
		body:  body,
		opts:  opts.withDefaults(),
		index: 1,
	}
	n.tr = NewTree(n)
	n.events = emit.NewDispatcher(name)
	n.fsm = newMachine(StatePending, testTransitions, n.events)
	n.effectiveSkip = n.opts.Skip
	return n
}

// Name returns the node's name, unique among its direct siblings.
func (n *Node) Name() string { return n.name }

// Body returns the node's body, nil for bodiless groups.
func (n *Node) Body() Body { return n.body }

// Index returns the node's 1-based position among its siblings.
func (n *Node) Index() int { return n.index }

// Ended reports whether the node reached a terminal pass or fail.
func (n *Node) Ended() bool { return n.ended }

// State returns the node's current lifecycle state.
func (n *Node) State() State { return n.fsm.Current() }

// Result returns the value produced by the last passing run.
func (n *Node) Result() any { return n.result }

// Err returns the error captured by the last failing run.
func (n *Node) Err() error { return n.err }

// Stats returns the timing of the last run.
func (n *Node) Stats() Stats { return n.stats }

// Context returns the execution context retained from the last run, nil
// before the first run with a body.
func (n *Node) Context() *TC { return n.tc }

// Options returns the node's configuration as fixed at creation.
func (n *Node) Options() Options { return n.opts }

// Skipped returns the node's effective skip: the resolved, tree-wide value
// that governs whether Run executes the body. It differs from the explicit
// Options.Skip mark whenever an only mark exists anywhere in the tree.
func (n *Node) Skipped() bool { return n.effectiveSkip }

// Events returns the node's dispatcher for subscribing to lifecycle
// events. Events from descendants bubble through it unconditionally.
func (n *Node) Events() *emit.Dispatcher { return n.events }

// Parent returns the owning parent node, nil for a root.
func (n *Node) Parent() *Node {
	if p := n.tr.Parent(); p != nil {
		return p.Value
	}
	return nil
}

// Children returns the ordered list of direct children.
func (n *Node) Children() []*Node {
	ts := n.tr.Children()
	out := make([]*Node, len(ts))
	for i, t := range ts {
		out[i] = t.Value
	}
	return out
}

// Level returns the node's distance from the root; the root is level 0.
func (n *Node) Level() int { return n.tr.Level() }

// Root walks parent links to the tree's root node.
func (n *Node) Root() *Node { return n.tr.Root().Value }

// Parents returns the ordered ancestor list, nearest first.
func (n *Node) Parents() []*Node {
	ts := n.tr.Parents()
	out := make([]*Node, len(ts))
	for i, t := range ts {
		out[i] = t.Value
	}
	return out
}

// All returns a lazy depth-first pre-order sequence over the node and all
// of its descendants.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for t := range n.tr.All() {
			if !yield(t.Value) {
				return
			}
		}
	}
}

// Add links child under n, assigns its 1-based sibling index, and wires
// its event bubbling. It performs no name checking and no resolution; use
// Test and its siblings for the full insertion contract.
func (n *Node) Add(child *Node) (*Node, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if _, err := n.tr.Add(child.tr); err != nil {
		return nil, err
	}
	child.index = len(n.tr.Children())
	child.events.SetParent(n.events)
	return child, nil
}

// Test constructs a child from the given arguments (see New) and inserts
// it. The insertion fails with a DuplicateNameError when a direct sibling
// already carries the name. On success the whole tree's skip/only
// resolution is recomputed and the new child is returned; Test is not
// chainable on the parent.
func (n *Node) Test(args ...any) (*Node, error) {
	return n.attach(New(args...))
}

// Group inserts a container child. A group is an ordinary node; callers
// typically give it no body.
func (n *Node) Group(args ...any) (*Node, error) {
	return n.attach(New(args...))
}

// Skip inserts a child carrying an explicit skip mark. An explicit skip
// always forces effective skip, even when the node is also marked only.
func (n *Node) Skip(args ...any) (*Node, error) {
	c := New(args...)
	c.opts.Skip = true
	return n.attach(c)
}

// Only inserts a child carrying the only mark, suppressing every node in
// the tree that is not itself marked only.
func (n *Node) Only(args ...any) (*Node, error) {
	c := New(args...)
	c.opts.Only = true
	return n.attach(c)
}

// Todo inserts a placeholder child; running it transitions to todo without
// invoking any body.
func (n *Node) Todo(args ...any) (*Node, error) {
	c := New(args...)
	c.opts.Todo = true
	return n.attach(c)
}

// Before inserts a child carrying the before ordering hint. The hint is
// stored for an external scheduler; the core enforces no order.
func (n *Node) Before(args ...any) (*Node, error) {
	c := New(args...)
	c.opts.Before = true
	return n.attach(c)
}

// After inserts a child carrying the after ordering hint. The hint is
// stored for an external scheduler; the core enforces no order.
func (n *Node) After(args ...any) (*Node, error) {
	c := New(args...)
	c.opts.After = true
	return n.attach(c)
}

func (n *Node) attach(child *Node) (*Node, error) {
	for _, sib := range n.Children() {
		if sib.name == child.name {
			return nil, &DuplicateNameError{Name: child.name, Parent: n.name}
		}
	}
	if _, err := n.Add(child); err != nil {
		return nil, err
	}
	resolveTree(n.Root())
	return child, nil
}

// Reset restores the node to pending, clears its run state, and reapplies
// its originally configured skip mark, discarding resolution side effects.
// With deep, the same is applied recursively to every descendant.
func (n *Node) Reset(deep bool) {
	n.resetOne()
	if deep {
		for _, c := range n.Children() {
			c.Reset(true)
		}
	}
}

func (n *Node) resetOne() {
	n.fsm.Reset()
	n.ended = false
	n.result = nil
	n.err = nil
	n.stats = Stats{}
	n.tc = nil
	n.effectiveSkip = n.opts.Skip
}
