package out

import (
	"watchtrainer/internal/modules/coach/domain"
	coachout "watchtrainer/internal/modules/coach/port/out"
	"watchtrainer/internal/telemetry/metrics"
)

type MetricsRecorder struct {
	metrics *metrics.Manager
}

func NewMetricsRecorder(m *metrics.Manager) coachout.FallbackRecorder {
	return MetricsRecorder{metrics: m}
}

func (r MetricsRecorder) Fallback(domain.Kind) {
	r.metrics.CounterCoachFallback.Inc()
}
