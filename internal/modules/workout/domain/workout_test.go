package domain_test

import (
	"errors"
	"testing"
	"time"

	historydomain "watchtrainer/internal/modules/history/domain"
	"watchtrainer/internal/modules/workout/domain"
	apperrors "watchtrainer/internal/platform/errors"
)

func TestNextTransitionTable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		from  domain.State
		event domain.Event
		to    domain.State
		err   error
	}{
		{domain.StateIdle, domain.EventStart, domain.StateActive, nil},
		{domain.StateActive, domain.EventStop, domain.StatePaused, nil},
		{domain.StatePaused, domain.EventResume, domain.StateActive, nil},
		{domain.StateActive, domain.EventEnd, domain.StateIdle, nil},
		{domain.StatePaused, domain.EventEnd, domain.StateIdle, nil},
		{domain.StateActive, domain.EventStart, domain.StateActive, apperrors.ErrActiveSessionExists},
		{domain.StatePaused, domain.EventStart, domain.StatePaused, apperrors.ErrActiveSessionExists},
		{domain.StateIdle, domain.EventEnd, domain.StateIdle, apperrors.ErrNoActiveSession},
		{domain.StateIdle, domain.EventStop, domain.StateIdle, apperrors.ErrInvalidState},
		{domain.StatePaused, domain.EventStop, domain.StatePaused, apperrors.ErrInvalidState},
		{domain.StateActive, domain.EventResume, domain.StateActive, apperrors.ErrInvalidState},
		{domain.StateIdle, domain.EventResume, domain.StateIdle, apperrors.ErrInvalidState},
	}
	for _, tc := range cases {
		got, err := domain.Next(tc.from, tc.event)
		if got != tc.to {
			t.Fatalf("%s --%s-->: expected %s, got %s", tc.from, tc.event, tc.to, got)
		}
		if tc.err == nil && err != nil {
			t.Fatalf("%s --%s-->: unexpected error %v", tc.from, tc.event, err)
		}
		if tc.err != nil && !errors.Is(err, tc.err) {
			t.Fatalf("%s --%s-->: expected %v, got %v", tc.from, tc.event, tc.err, err)
		}
		if tc.err != nil && !errors.Is(err, apperrors.ErrInvalidState) {
			t.Fatalf("every rejected transition must be an invalid state error, got %v", err)
		}
	}
}

func TestFinishCopiesLatestSnapshot(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 2, 25, 7, 0, 0, 0, time.UTC)
	active := domain.ActiveSession{
		ID:            "s-1",
		State:         domain.StatePaused,
		WorkoutType:   historydomain.WorkoutRunning,
		StartTime:     start,
		StartSnapshot: domain.Snapshot{Steps: 500, Calories: 20, Distance: 300},
	}
	latest := domain.Snapshot{Steps: 1700, HeartRate: 130, Calories: 100, Distance: 1140}

	cumulative := domain.Finish(active, start.Add(10*time.Minute), latest, domain.SnapshotCumulative, "easy")
	if cumulative.TotalSteps != 1700 || cumulative.CaloriesBurned != 100 || cumulative.Notes != "easy" {
		t.Fatalf("cumulative mode must copy the snapshot: %+v", cumulative)
	}
	if cumulative.Duration() != 10*time.Minute || cumulative.Validate() != nil {
		t.Fatalf("finished session must be valid: %+v", cumulative)
	}

	delta := domain.Finish(active, start.Add(10*time.Minute), latest, domain.SnapshotDelta, "")
	if delta.TotalSteps != 1200 || delta.CaloriesBurned != 80 || delta.Distance != 840 || delta.AverageHeartRate != 130 {
		t.Fatalf("delta mode must subtract the start snapshot: %+v", delta)
	}

	skewed := domain.Finish(active, start.Add(-time.Second), latest, domain.SnapshotCumulative, "")
	if !skewed.EndTime.Equal(start) {
		t.Fatalf("end before start must clamp to start, got %s", skewed.EndTime)
	}
}

func TestParseSnapshotMode(t *testing.T) {
	t.Parallel()
	if mode, err := domain.ParseSnapshotMode(""); err != nil || mode != domain.SnapshotCumulative {
		t.Fatalf("empty mode must default to cumulative, got %q (%v)", mode, err)
	}
	if mode, err := domain.ParseSnapshotMode("delta"); err != nil || mode != domain.SnapshotDelta {
		t.Fatalf("expected delta, got %q (%v)", mode, err)
	}
	if _, err := domain.ParseSnapshotMode("sum"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
