package emit

import "sync"

// BufferedSink implements Sink by storing events in memory.
//
// It captures the bubbled stream for later inspection, which makes it the
// sink of choice for tests and for post-run analysis.
//
// Warning: every event is kept until Clear is called. For long-running
// trees with high event volume, prefer LogSink or a metrics sink.
//
// Example usage:
//
//	sink := emit.NewBufferedSink()
//	root.Events().Pipe(sink)
//	// ... run the tree ...
//	failures := sink.HistoryWithFilter(emit.HistoryFilter{Name: "fail"})
type BufferedSink struct {
	mu     sync.RWMutex
	events []Event
}

// HistoryFilter selects a subset of the captured events. Empty fields do
// not filter; set fields combine with AND.
type HistoryFilter struct {
	// Origin keeps only events emitted by the named node.
	Origin string
	// Name keeps only events with the given event name.
	Name string
}

// NewBufferedSink creates an empty in-memory sink.
func NewBufferedSink() *BufferedSink {
	return &BufferedSink{}
}

// Emit appends the event to the buffer.
func (b *BufferedSink) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

// History returns a copy of all captured events in emission order.
func (b *BufferedSink) History() []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// HistoryWithFilter returns the captured events matching the filter, in
// emission order.
func (b *BufferedSink) HistoryWithFilter(f HistoryFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Event
	for _, ev := range b.events {
		if f.Origin != "" && ev.Origin != f.Origin {
			continue
		}
		if f.Name != "" && ev.Name != f.Name {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Names returns the event names in emission order, optionally restricted
// to a single origin. Convenient for asserting event ordering in tests.
func (b *BufferedSink) Names(origin string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []string
	for _, ev := range b.events {
		if origin != "" && ev.Origin != origin {
			continue
		}
		out = append(out, ev.Name)
	}
	return out
}

// Clear drops all captured events.
func (b *BufferedSink) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
}

// Len reports the number of captured events.
func (b *BufferedSink) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.events)
}
