package suite

import "time"

// timeoutRace is one competitor in a run's race: a deferred outcome that
// never succeeds and fails after a configured delay. Stop releases the
// underlying timer so a completed run does not keep the process alive.
type timeoutRace struct {
	timer *time.Timer
	c     chan error
}

// newTimeoutRace starts the clock. The race channel yields exactly one
// TimeoutError naming the configured delay if the timer fires.
func newTimeoutRace(d time.Duration) *timeoutRace {
	r := &timeoutRace{c: make(chan error, 1)}
	r.timer = time.AfterFunc(d, func() {
		r.c <- &TimeoutError{Timeout: d}
	})
	return r
}

// C returns the channel the timeout error is delivered on.
func (r *timeoutRace) C() <-chan error { return r.c }

// Stop cancels the pending timer. Safe to call after the timer fired.
func (r *timeoutRace) Stop() {
	r.timer.Stop()
}
