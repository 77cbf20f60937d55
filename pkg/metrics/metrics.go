package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов Prometheus для портала
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
	FallbackTotal           *prometheus.CounterVec
	UpstreamAvailable       prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled by the portal",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		UpstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Requests issued to the parking API by operation and outcome",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),
		UpstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Parking API request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		FallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "fallback_served_total",
			Help:        "Reads answered from bundled fallback data",
			ConstLabels: labels,
		}, []string{"operation", "reason"}),
		UpstreamAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "upstream_available",
			Help:        "1 when the last health probe of the parking API succeeded",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
		m.FallbackTotal,
		m.UpstreamAvailable,
	)

	return m
}

// ObserveUpstream фиксирует запрос к parking API
func (m *Metrics) ObserveUpstream(operation, outcome string, duration time.Duration) {
	m.UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncFallback фиксирует ответ из резервных данных
func (m *Metrics) IncFallback(operation, reason string) {
	m.FallbackTotal.WithLabelValues(operation, reason).Inc()
}

// SetUpstreamAvailable выставляет gauge доступности
func (m *Metrics) SetUpstreamAvailable(available bool) {
	if available {
		m.UpstreamAvailable.Set(1)
		return
	}
	m.UpstreamAvailable.Set(0)
}
