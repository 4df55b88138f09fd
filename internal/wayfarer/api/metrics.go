package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	assistantTurns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wayfarer",
		Subsystem: "assistant",
		Name:      "turns_total",
		Help:      "Assistant turns handled, by generated message type.",
	}, []string{"message_type"})

	assistantFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wayfarer",
		Subsystem: "assistant",
		Name:      "turn_failures_total",
		Help:      "Assistant turns that ended in a generation failure.",
	})

	assistantTurnDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wayfarer",
		Subsystem: "assistant",
		Name:      "turn_duration_seconds",
		Help:      "Wall-clock duration of assistant turns.",
		Buckets:   prometheus.DefBuckets,
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wayfarer",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method and status class.",
	}, []string{"method", "status"})
)
