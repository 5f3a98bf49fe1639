package domain_test

import (
	"errors"
	"testing"
	"time"

	"watchtrainer/internal/modules/stats/domain"
	apperrors "watchtrainer/internal/platform/errors"
)

func TestMostFrequentTypeBreaksTiesByFirstOccurrence(t *testing.T) {
	t.Parallel()
	if got := domain.MostFrequentType(nil); got != domain.NoWorkouts {
		t.Fatalf("expected %q, got %q", domain.NoWorkouts, got)
	}
	workouts := []domain.Workout{{Type: "yoga"}, {Type: "running"}, {Type: "running"}, {Type: "yoga"}, {Type: "cycling"}}
	if got := domain.MostFrequentType(workouts); got != "yoga" {
		t.Fatalf("tie must go to the first occurrence, got %q", got)
	}
	workouts = append(workouts, domain.Workout{Type: "running"})
	if got := domain.MostFrequentType(workouts); got != "running" {
		t.Fatalf("expected running, got %q", got)
	}
}

func TestPeriodStart(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC) // Sunday
	cases := map[domain.Period]time.Time{
		domain.PeriodToday:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		domain.PeriodWeek:    time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
		domain.PeriodMonth:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		domain.PeriodAllTime: time.UnixMilli(0),
	}
	for period, want := range cases {
		if got := period.Start(now); !got.Equal(want) {
			t.Fatalf("%s: expected %s, got %s", period, want, got)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()
	if p, err := domain.ParsePeriod("all-time"); err != nil || p != domain.PeriodAllTime {
		t.Fatalf("expected all_time, got %q (%v)", p, err)
	}
	if _, err := domain.ParsePeriod("decade"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSummarizeTruncatesActiveMinutesAfterSumming(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	progress := domain.Summarize(day, []domain.Workout{
		{Duration: 90 * time.Second, Steps: 100, Calories: 5.5},
		{Duration: 90 * time.Second, Steps: 50, Calories: 2},
	})
	if progress.ActiveMinutes != 3 || progress.Steps != 150 || progress.Calories != 7.5 || progress.Workouts != 2 {
		t.Fatalf("unexpected summary: %+v", progress)
	}
}
