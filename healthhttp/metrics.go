package healthhttp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ProbeMetrics records probe traffic in a dedicated Prometheus registry.
type ProbeMetrics struct {
	reg      *prometheus.Registry
	handler  http.Handler
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewProbeMetrics returns a fresh registry with the Go and process
// collectors plus probe metrics. Labels are limited to verdict, route kind
// and status code.
func NewProbeMetrics() *ProbeMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &ProbeMetrics{
		reg: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "health_probe_requests_total",
			Help: "Total health probe requests by verdict, route kind, and status",
		}, []string{"verdict", "kind", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "health_probe_duration_seconds",
			Help:    "Health probe latency by verdict",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"verdict"}),
	}
	reg.MustRegister(m.requests, m.duration)

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	return m
}

// Registry returns the underlying registry so other collectors can share it.
func (m *ProbeMetrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ProbeMetrics) Handler() http.Handler {
	return m.handler
}

// Observe records one probe request.
func (m *ProbeMetrics) Observe(verdict, kind string, status int, d time.Duration) {
	m.requests.WithLabelValues(verdict, kind, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(verdict).Observe(d.Seconds())
}
