// Package metrics records the outcome of every document mutation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "startpage"

type Recorder struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// New builds a recorder on its own registry so tests never collide with
// the global default registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Document mutations by operation and outcome.",
		}, []string{"operation", "outcome", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mutation_duration_seconds",
			Help:      "Time spent in a read-modify-write cycle.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(r.mutations, r.duration)
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return r
}

// Observe counts one mutation. outcome is "applied", "skipped" or "error".
func (r *Recorder) Observe(operation, outcome, reason string, elapsed time.Duration) {
	r.mutations.WithLabelValues(operation, outcome, reason).Inc()
	r.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Mutations exposes the counter for tests.
func (r *Recorder) Mutations() *prometheus.CounterVec { return r.mutations }
