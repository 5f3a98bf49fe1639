package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "watchtrainer/internal/platform/errors"
)

const SchemaVersion = 1

type WorkoutType string

const (
	WorkoutWalking  WorkoutType = "walking"
	WorkoutRunning  WorkoutType = "running"
	WorkoutCycling  WorkoutType = "cycling"
	WorkoutStrength WorkoutType = "strength"
	WorkoutYoga     WorkoutType = "yoga"
	WorkoutOther    WorkoutType = "other"
)

var WorkoutTypes = []WorkoutType{
	WorkoutWalking, WorkoutRunning, WorkoutCycling, WorkoutStrength, WorkoutYoga, WorkoutOther,
}

func (t WorkoutType) Validate() error {
	switch t {
	case WorkoutWalking, WorkoutRunning, WorkoutCycling, WorkoutStrength, WorkoutYoga, WorkoutOther:
		return nil
	default:
		return apperrors.Validation("unsupported workout type %q", string(t))
	}
}

func (t WorkoutType) Label() string {
	if t == "" {
		return "none"
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// ParseWorkoutType accepts any casing and surrounding whitespace.
func ParseWorkoutType(raw string) (WorkoutType, error) {
	t := WorkoutType(strings.ToLower(strings.TrimSpace(raw)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Session is one completed workout. EndTime is zero while in progress;
// only finalized sessions are ever stored.
type Session struct {
	ID               string
	StartTime        time.Time
	EndTime          time.Time
	WorkoutType      WorkoutType
	TotalSteps       int
	AverageHeartRate int
	CaloriesBurned   float64
	Distance         float64
	Notes            string
}

func (s Session) Ended() bool {
	return !s.EndTime.IsZero()
}

func (s Session) Duration() time.Duration {
	if !s.Ended() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime).Truncate(time.Millisecond)
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return apperrors.Validation("session id is required")
	}
	if s.StartTime.IsZero() {
		return apperrors.Validation("session %s has no start time", s.ID)
	}
	if !s.Ended() {
		return apperrors.Validation("session %s has no end time", s.ID)
	}
	if s.EndTime.Before(s.StartTime) {
		return apperrors.Validation("session %s ends before it starts", s.ID)
	}
	if err := s.WorkoutType.Validate(); err != nil {
		return err
	}
	if s.TotalSteps < 0 || s.AverageHeartRate < 0 || s.CaloriesBurned < 0 || s.Distance < 0 {
		return fmt.Errorf("%w: session %s has negative metrics", apperrors.ErrValidation, s.ID)
	}
	return nil
}
