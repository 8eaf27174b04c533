// Package metrics exposes sync counters for the control server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry          *prometheus.Registry
	uploadsTotal      *prometheus.CounterVec
	transformFailures *prometheus.CounterVec
	uploadDuration    prometheus.Histogram
	inFlight          prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		uploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bbsync_uploads_total",
				Help: "Sync attempts by outcome",
			},
			[]string{"result"},
		),
		transformFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bbsync_transform_failures_total",
				Help: "Failed transforms by strategy",
			},
			[]string{"strategy"},
		),
		uploadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bbsync_upload_duration_seconds",
				Help:    "Time spent in the upload request",
				Buckets: prometheus.DefBuckets,
			},
		),
		inFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bbsync_jobs_in_flight",
				Help: "Sync jobs currently running",
			},
		),
	}
}

func (m *Metrics) RecordResult(result string) {
	m.uploadsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordTransformFailure(strategy string) {
	m.transformFailures.WithLabelValues(strategy).Inc()
}

func (m *Metrics) ObserveUpload(d time.Duration) {
	m.uploadDuration.Observe(d.Seconds())
}

func (m *Metrics) JobStarted() {
	m.inFlight.Inc()
}

func (m *Metrics) JobDone() {
	m.inFlight.Dec()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
