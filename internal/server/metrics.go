package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	moveApplied = "applied"
	moveIgnored = "ignored"
)

// Metrics holds the service's Prometheus collectors
type Metrics struct {
	SessionsCreated prometheus.Counter
	SessionsExpired prometheus.Counter
	ActiveSessions  prometheus.Gauge
	Moves           *prometheus.CounterVec
	Jumps           prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tictactoe",
			Name:      "sessions_created_total",
			Help:      "Sessions created.",
		}),
		SessionsExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tictactoe",
			Name:      "sessions_expired_total",
			Help:      "Sessions removed after being idle.",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "tictactoe",
			Name:      "active_sessions",
			Help:      "Sessions currently held.",
		}),
		Moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tictactoe",
			Name:      "moves_total",
			Help:      "Play requests by result.",
		}, []string{"result"}),
		Jumps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tictactoe",
			Name:      "jumps_total",
			Help:      "Jump requests.",
		}),
	}
}
