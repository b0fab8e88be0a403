package suite

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/probatio/probatio/suite/emit"
)

// Metrics is an emit.Sink exposing run outcomes as Prometheus metrics.
//
// Metrics exposed (all namespaced "probatio"):
//   - runs_total (counter): finished runs by terminal state
//     (pass, fail, skipped, ignored, todo).
//   - inflight_runs (gauge): bodies currently executing.
//   - run_duration_ms (histogram): wall time of pass/fail runs, observed
//     from the duration carried by the "end" event.
//
// Attach to a tree's root to cover every descendant:
//
//	registry := prometheus.NewRegistry()
//	root.Events().Pipe(suite.NewMetrics(registry))
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
type Metrics struct {
	runs     *prometheus.CounterVec
	inflight prometheus.Gauge
	duration prometheus.Histogram
}

// NewMetrics creates and registers the run metrics with the given registry
// (prometheus.DefaultRegisterer when nil).
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "probatio",
			Name:      "runs_total",
			Help:      "Finished runs by terminal state",
		}, []string{"state"}),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "probatio",
			Name:      "inflight_runs",
			Help:      "Test bodies currently executing",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "probatio",
			Name:      "run_duration_ms",
			Help:      "Wall time of pass/fail runs in milliseconds",
			Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
	}
}

// Emit implements emit.Sink over the bubbled event stream.
func (m *Metrics) Emit(ev emit.Event) {
	switch ev.Name {
	case EventStart:
		m.inflight.Inc()
	case string(StatePass), string(StateFail), string(StateSkipped),
		string(StateIgnored), string(StateTodo):
		m.runs.WithLabelValues(ev.Name).Inc()
	case EventEnd:
		m.inflight.Dec()
		if len(ev.Args) == 1 {
			if d, ok := ev.Args[0].(time.Duration); ok {
				m.duration.Observe(float64(d.Milliseconds()))
			}
		}
	}
}
