package suite

import (
	"fmt"
	"sync"
)

// Outcome is the settled result of a body: a value or an error, never both.
type Outcome struct {
	Value any
	Err   error
}

// Future is the deferred form of a body outcome. A body that cannot answer
// synchronously returns a *Future; Run races it against the node's timeout
// and the first settlement wins. A Future settles at most once — late
// Resolve or Reject calls are discarded, which is what terminates the
// node-visible effects of a body that lost the race.
type Future struct {
	once sync.Once
	done chan Outcome
}

// NewFuture creates an unsettled future.
func NewFuture() *Future {
	return &Future{done: make(chan Outcome, 1)}
}

// Resolve settles the future with a value. Calls after the first
// settlement are no-ops.
func (f *Future) Resolve(v any) {
	f.once.Do(func() {
		f.done <- Outcome{Value: v}
	})
}

// Reject settles the future with an error. Calls after the first
// settlement are no-ops.
func (f *Future) Reject(err error) {
	f.once.Do(func() {
		f.done <- Outcome{Err: err}
	})
}

// Done returns the channel the single settlement is delivered on.
func (f *Future) Done() <-chan Outcome { return f.done }

// Go runs fn on its own goroutine and returns a Future settled with fn's
// outcome. A panic inside fn rejects the future instead of crashing the
// process.
func Go(fn func() (any, error)) *Future {
	f := NewFuture()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.Reject(recoveredError(r))
			}
		}()
		v, err := fn()
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// recoveredError normalizes a recovered panic value into an error.
func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
