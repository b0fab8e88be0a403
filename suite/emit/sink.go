package emit

// Sink receives the bubbled event stream of a dispatcher.
//
// Sinks are the pluggable observability backends of a test tree:
//   - Logging: stdout, files (LogSink)
//   - Capture: in-memory history for tests and dashboards (BufferedSink)
//   - Distributed tracing: OpenTelemetry (OTelSink)
//   - Metrics: Prometheus (suite.Metrics)
//
// Implementations should be:
//   - Non-blocking: avoid slowing down test execution
//   - Thread-safe: sibling nodes may emit from separate goroutines
//   - Resilient: a sink failure must not crash the run
type Sink interface {
	// Emit processes a single event. Emit must not panic; internal
	// failures should be swallowed or logged by the sink itself.
	Emit(event Event)
}

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

// Emit forwards the event to every sink in the slice.
func (m MultiSink) Emit(event Event) {
	for _, s := range m {
		s.Emit(event)
	}
}
