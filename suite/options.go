package suite

import "time"

// Defaults applied by Options.withDefaults when a field is left zero.
const (
	// DefaultTimeout bounds a body's execution when no timeout is set.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxConcurrency is the concurrency hint stored on a node when
	// none is configured. The core never schedules children itself; an
	// external runner honors this value.
	DefaultMaxConcurrency = 10
)

// Options configures a test node at construction time. The skip/only/todo
// marks are fixed at creation; the effective skip of a node is a derived,
// tree-wide value recomputed on every insertion (see resolution in Test).
type Options struct {
	// Timeout bounds the body's execution. Zero means DefaultTimeout.
	Timeout time.Duration

	// MaxConcurrency hints how many direct children an external runner
	// may execute at once. Zero means DefaultMaxConcurrency.
	MaxConcurrency int

	// Skip marks this node explicitly skipped. An explicit skip always
	// wins, even against an only mark on the same node.
	Skip bool

	// Only suppresses every node in the tree that is not itself marked
	// only (and not explicitly skipped).
	Only bool

	// Todo marks the node as a placeholder; running it transitions to
	// the todo state without invoking the body.
	Todo bool

	// Before and After are opaque ordering hints for an external
	// scheduler. The core stores them without enforcing any order.
	Before bool
	After  bool
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxConcurrency == 0 {
		o.MaxConcurrency = DefaultMaxConcurrency
	}
	return o
}
