package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server's Prometheus collectors. One set per Server,
// registered on the configured registry.
type metrics struct {
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	activeSessions prometheus.Gauge
	opsTotal       *prometheus.CounterVec
	wsErrors       *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		eventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sprout",
				Name:      "events_total",
				Help:      "Client events dispatched, by event type and status.",
			},
			[]string{"type", "status"},
		),
		eventDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sprout",
				Name:      "event_duration_seconds",
				Help:      "Time spent handling a client event, including updates.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "sprout",
				Name:      "active_sessions",
				Help:      "Currently connected WebSocket sessions.",
			},
		),
		opsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sprout",
				Name:      "ops_total",
				Help:      "Splice ops written to clients, by op.",
			},
			[]string{"op"},
		),
		wsErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sprout",
				Name:      "websocket_errors_total",
				Help:      "WebSocket failures, by kind.",
			},
			[]string{"type"},
		),
	}
}

func (m *metrics) observeEvent(eventType string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.eventsTotal.WithLabelValues(eventType, status).Inc()
	m.eventDuration.WithLabelValues(eventType).Observe(d.Seconds())
}
