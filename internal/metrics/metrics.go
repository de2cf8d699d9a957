// Package metrics exposes Prometheus collectors for the optimize endpoint.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeOK labels successful optimizations; failures use the validation error kind.
const OutcomeOK = "ok"

type Metrics struct {
	registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	Duration  prometheus.Histogram
	FillRatio prometheus.Histogram
	Lines     prometheus.Histogram
}

// New builds collectors on a private registry, plus the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "optimize_requests_total",
			Help:      "Optimize calls by outcome (ok or validation error kind).",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "inventory",
			Name:      "optimize_duration_seconds",
			Help:      "Time spent validating and allocating.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		FillRatio: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "inventory",
			Name:      "allocation_fill_ratio",
			Help:      "Share of capacity allocated per successful call.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		Lines: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "inventory",
			Name:      "allocation_lines",
			Help:      "Allocation lines returned per successful call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(
		m.Requests,
		m.Duration,
		m.FillRatio,
		m.Lines,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSuccess records a successful optimization.
func (m *Metrics) ObserveSuccess(d time.Duration, fillRatio float64, lines int) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(OutcomeOK).Inc()
	m.Duration.Observe(d.Seconds())
	m.FillRatio.Observe(fillRatio)
	m.Lines.Observe(float64(lines))
}

// ObserveFailure records a rejected optimization under the given outcome label.
func (m *Metrics) ObserveFailure(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(outcome).Inc()
	m.Duration.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
