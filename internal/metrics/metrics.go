package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Recorder counts render passes. A nil *Recorder discards everything.
type Recorder struct {
	registry *prometheus.Registry

	renders  *prometheus.CounterVec
	failures *prometheus.CounterVec
	excluded *prometheus.CounterVec
	hovers   prometheus.Counter
}

// NewRecorder returns a recorder with its own registry. withRuntime adds the
// Go runtime and process collectors, as a long-running server wants.
func NewRecorder(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fossil",
			Name:      "render_total",
			Help:      "Charts rendered, by source and backend.",
		}, []string{"source", "backend"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fossil",
			Name:      "render_errors_total",
			Help:      "Charts that failed to build or render, by source.",
		}, []string{"source"}),
		excluded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fossil",
			Name:      "points_excluded_total",
			Help:      "Data points skipped because they had no year, by source.",
		}, []string{"source"}),
		hovers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fossil",
			Name:      "tooltips_total",
			Help:      "Tooltips formatted.",
		}),
	}
	r.registry.MustRegister(r.renders, r.failures, r.excluded, r.hovers)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Registry exposes the underlying registry for HTTP handlers and tests.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// Rendered records one chart render.
func (r *Recorder) Rendered(source, backend string) {
	if r == nil {
		return
	}
	r.renders.WithLabelValues(source, backend).Inc()
}

// Failed records one failed chart.
func (r *Recorder) Failed(source string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(source).Inc()
}

// Excluded records n points skipped for source.
func (r *Recorder) Excluded(source string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.excluded.WithLabelValues(source).Add(float64(n))
}

// Tooltip records one formatted tooltip.
func (r *Recorder) Tooltip() {
	if r == nil {
		return
	}
	r.hovers.Inc()
}
