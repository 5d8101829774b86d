package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	rateLimited     prometheus.Counter
	streams         prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "elp_request_duration_seconds",
				Help:    "Time spent evaluating a position request",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"endpoint"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elp_requests_total",
				Help: "Total number of requests",
			},
			[]string{"endpoint", "code"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "elp_rate_limited_total",
				Help: "Requests refused by the per client rate limiter",
			},
		),
		streams: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "elp_streams_active",
				Help: "Open websocket position streams",
			},
		),
	}
	reg.MustRegister(m.requestDuration, m.requestsTotal, m.rateLimited, m.streams)
	return m
}

func (m *metrics) record(endpoint string, code int, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(endpoint, statusLabel(code)).Inc()
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}
