package suite

import (
	"context"
	"sync"
)

// TC is the ephemeral per-run execution context handed to a body. It
// exposes the node's name and sibling index plus a mutable free-form data
// bag, and is retained on the node after the run for inspection.
type TC struct {
	name  string
	index int
	ctx   context.Context

	mu   sync.Mutex
	data map[string]any
}

func newTC(ctx context.Context, name string, index int) *TC {
	return &TC{
		name:  name,
		index: index,
		ctx:   ctx,
		data:  make(map[string]any),
	}
}

// Name returns the running node's name.
func (t *TC) Name() string { return t.name }

// Index returns the running node's 1-based position among its siblings.
func (t *TC) Index() int { return t.index }

// Context returns the context.Context the run was started with.
func (t *TC) Context() context.Context { return t.ctx }

// Set stores a value in the run's data bag.
func (t *TC) Set(key string, value any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data[key] = value
}

// Get reads a value from the run's data bag.
func (t *TC) Get(key string) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.data[key]
	return v, ok
}

// Data returns a snapshot copy of the run's data bag.
func (t *TC) Data() map[string]any {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]any, len(t.data))
	for k, v := range t.data {
		out[k] = v
	}
	return out
}
