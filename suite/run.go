package suite

import (
	"context"
	"time"
)

// Run executes the node once.
//
// Shortcut outcomes, taken in order:
//   - no body and no todo mark: transition to ignored, no result
//   - todo mark (with or without body): transition to todo
//   - effective skip: transition to skipped, body never invoked
//
// Otherwise the node transitions to in-progress, emits "start", records
// the start time, builds a fresh execution context, and invokes the body.
// A *Future returned by the body is raced against the node's timeout; the
// first settlement wins and the loser's eventual settlement is discarded
// without cancelling the underlying computation. A synchronous outcome
// settles immediately without a race. A body panic counts as a failure.
//
// On success the result is stored, the clock stops, the node transitions
// to pass and Run returns the value. On failure (including timeout) the
// error is stored, the node transitions to fail and Run returns the error.
// Both terminal transitions set Ended and emit "end" after the pass/fail
// event, carrying the run duration.
//
// Running a node that already left pending fails with a TransitionError.
func (n *Node) Run(ctx context.Context) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case n.body == nil && !n.opts.Todo:
		return nil, n.fsm.Set(StateIgnored)
	case n.opts.Todo:
		return nil, n.fsm.Set(StateTodo)
	case n.effectiveSkip:
		return nil, n.fsm.Set(StateSkipped)
	}

	if err := n.fsm.Set(StateInProgress); err != nil {
		return nil, err
	}
	n.events.Emit(EventStart)
	n.stats.Start = time.Now()
	n.tc = newTC(ctx, n.name, n.index)

	out, err := n.invoke(n.tc)
	if err == nil {
		if f, ok := out.(*Future); ok {
			out, err = n.race(ctx, f)
		}
	}
	return n.settle(out, err)
}

// invoke calls the body, converting a panic into an error outcome.
func (n *Node) invoke(tc *TC) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, recoveredError(r)
		}
	}()
	return n.body(tc)
}

// race waits for the first settlement among the future, the node's timeout
// and the caller's context. Only the wait stops when the future loses; its
// goroutine keeps running and its late settlement is dropped.
func (n *Node) race(ctx context.Context, f *Future) (any, error) {
	t := newTimeoutRace(n.opts.Timeout)
	defer t.Stop()

	select {
	case o := <-f.Done():
		return o.Value, o.Err
	case err := <-t.C():
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// settle stops the clock and performs the terminal transition.
func (n *Node) settle(out any, err error) (any, error) {
	n.stats.End = time.Now()
	n.stats.Duration = n.stats.End.Sub(n.stats.Start)

	if err != nil {
		n.err = err
		if terr := n.fsm.Set(StateFail, err); terr != nil {
			return nil, terr
		}
		n.ended = true
		n.events.Emit(EventEnd, n.stats.Duration)
		return nil, err
	}

	n.result = out
	if terr := n.fsm.Set(StatePass, out); terr != nil {
		return nil, terr
	}
	n.ended = true
	n.events.Emit(EventEnd, n.stats.Duration)
	return out, nil
}
