package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests      *prometheus.CounterVec
	CounterTransitions   *prometheus.CounterVec
	CounterSessions      *prometheus.CounterVec
	CounterCoachFallback prometheus.Counter
	CounterRequestPanic  prometheus.Counter

	// gauges
	GaugeRequests      prometheus.Gauge
	GaugeActiveSession prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
	HistSessionDuration prometheus.Histogram
	HistSessionSteps    prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("watchtrainer", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("watchtrainer", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "workout_transitions",
			Help:      "Workout state transitions by source and target state",
		}, []string{"from", "to"}),
		CounterSessions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "workout_sessions",
			Help:      "Completed workout sessions by type",
		}, []string{"type"}),
		CounterCoachFallback: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "coach_fallback",
			Help:      "Coaching messages served from the built-in text",
		}),
		CounterRequestPanic: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "handle_request_panic",
			Help:      "Panics recovered while serving requests",
		}),
		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests served",
		}),
		GaugeActiveSession: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "active_session",
			Help:      "1 while a workout is active or paused",
		}),
		HistRequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Total duration of requests in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		HistSessionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "workout_duration_seconds",
			Help:      "Duration of completed workouts in seconds",
			Buckets:   []float64{60, 300, 600, 1200, 1800, 2700, 3600, 5400, 7200, 10800},
		}),
		HistSessionSteps: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "workout_steps",
			Help:      "Steps recorded per completed workout",
			Buckets:   []float64{0, 500, 1000, 2500, 5000, 7500, 10000, 15000, 20000},
		}),
	}
}
