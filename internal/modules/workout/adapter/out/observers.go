package out

import (
	log "github.com/sirupsen/logrus"

	historydomain "watchtrainer/internal/modules/history/domain"
	"watchtrainer/internal/modules/workout/domain"
	workoutout "watchtrainer/internal/modules/workout/port/out"
	"watchtrainer/internal/telemetry/metrics"
)

type MetricsObserver struct {
	metrics *metrics.Manager
}

func NewMetricsObserver(m *metrics.Manager) workoutout.Observer {
	return MetricsObserver{metrics: m}
}

func (o MetricsObserver) Transitioned(from, to domain.State, _ historydomain.WorkoutType) {
	o.metrics.CounterTransitions.WithLabelValues(string(from), string(to)).Inc()
	if to == domain.StateIdle {
		o.metrics.GaugeActiveSession.Set(0)
	} else {
		o.metrics.GaugeActiveSession.Set(1)
	}
}

func (o MetricsObserver) Completed(session historydomain.Session) {
	o.metrics.CounterSessions.WithLabelValues(string(session.WorkoutType)).Inc()
	o.metrics.HistSessionDuration.Observe(session.Duration().Seconds())
	o.metrics.HistSessionSteps.Observe(float64(session.TotalSteps))
}

type LogObserver struct{}

func NewLogObserver() workoutout.Observer {
	return LogObserver{}
}

func (LogObserver) Transitioned(from, to domain.State, workoutType historydomain.WorkoutType) {
	log.WithFields(log.Fields{"from": from, "to": to, "type": workoutType}).Info("workout transition")
}

func (LogObserver) Completed(session historydomain.Session) {
	log.WithFields(log.Fields{
		"session_id": session.ID,
		"type":       session.WorkoutType,
		"duration":   session.Duration().String(),
		"steps":      session.TotalSteps,
	}).Info("workout recorded")
}
