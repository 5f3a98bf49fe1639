package domain

import (
	"time"

	historydomain "watchtrainer/internal/modules/history/domain"
	apperrors "watchtrainer/internal/platform/errors"
)

const SchemaVersion = 1

type State string

const (
	StateIdle   State = "idle"
	StateActive State = "active"
	StatePaused State = "paused"
)

type Event string

const (
	EventStart  Event = "start"
	EventStop   Event = "stop"
	EventResume Event = "resume"
	EventEnd    Event = "end"
)

// Next applies event to from. Illegal transitions return ErrInvalidState
// variants and leave the state untouched.
func Next(from State, event Event) (State, error) {
	switch event {
	case EventStart:
		if from == StateIdle {
			return StateActive, nil
		}
		return from, apperrors.ErrActiveSessionExists
	case EventStop:
		if from == StateActive {
			return StatePaused, nil
		}
	case EventResume:
		if from == StatePaused {
			return StateActive, nil
		}
	case EventEnd:
		if from == StateActive || from == StatePaused {
			return StateIdle, nil
		}
		return from, apperrors.ErrNoActiveSession
	}
	return from, apperrors.InvalidState("cannot %s a workout that is %s", event, from)
}

type SnapshotMode string

const (
	SnapshotCumulative SnapshotMode = "cumulative"
	SnapshotDelta      SnapshotMode = "delta"
)

func ParseSnapshotMode(raw string) (SnapshotMode, error) {
	switch SnapshotMode(raw) {
	case "", SnapshotCumulative:
		return SnapshotCumulative, nil
	case SnapshotDelta:
		return SnapshotDelta, nil
	default:
		return "", apperrors.Validation("unknown snapshot mode %q", raw)
	}
}

// Snapshot holds the health counters copied into a session.
type Snapshot struct {
	Steps     int     `json:"steps"`
	HeartRate int     `json:"heart_rate"`
	Calories  float64 `json:"calories"`
	Distance  float64 `json:"distance"`
}

func (s Snapshot) Since(start Snapshot) Snapshot {
	return Snapshot{
		Steps:     max(0, s.Steps-start.Steps),
		HeartRate: s.HeartRate,
		Calories:  max(0, s.Calories-start.Calories),
		Distance:  max(0, s.Distance-start.Distance),
	}
}

// ActiveSession is the in-progress workout. EndTime is only known once the
// session is finalized into a history record.
type ActiveSession struct {
	ID            string                    `json:"id"`
	State         State                     `json:"state"`
	WorkoutType   historydomain.WorkoutType `json:"workout_type"`
	StartTime     time.Time                 `json:"start_time"`
	StartSnapshot Snapshot                  `json:"start_snapshot"`
}

// Tracker is the persisted controller state shared between processes.
type Tracker struct {
	SchemaVersion int                       `json:"schema_version"`
	SelectedType  historydomain.WorkoutType `json:"selected_type"`
	Session       *ActiveSession            `json:"session,omitempty"`
}

func (t Tracker) State() State {
	if t.Session == nil {
		return StateIdle
	}
	return t.Session.State
}

// Finish freezes the active session into a history record.
func Finish(active ActiveSession, end time.Time, latest Snapshot, mode SnapshotMode, notes string) historydomain.Session {
	values := latest
	if mode == SnapshotDelta {
		values = latest.Since(active.StartSnapshot)
	}
	if end.Before(active.StartTime) {
		end = active.StartTime
	}
	return historydomain.Session{
		ID:               active.ID,
		StartTime:        active.StartTime,
		EndTime:          end,
		WorkoutType:      active.WorkoutType,
		TotalSteps:       values.Steps,
		AverageHeartRate: values.HeartRate,
		CaloriesBurned:   values.Calories,
		Distance:         values.Distance,
		Notes:            notes,
	}
}
