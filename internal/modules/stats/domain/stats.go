package domain

import (
	"strings"
	"time"

	"watchtrainer/internal/platform/clock"
	apperrors "watchtrainer/internal/platform/errors"
)

type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodAllTime Period = "all_time"
)

// NoWorkouts is reported as the most frequent type of an empty period.
const NoWorkouts = "none"

func ParsePeriod(raw string) (Period, error) {
	p := Period(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAllTime:
		return p, nil
	case "":
		return PeriodToday, nil
	default:
		return "", apperrors.Validation("unknown stats period %q", raw)
	}
}

func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return clock.StartOfWeek(now)
	case PeriodMonth:
		return clock.StartOfMonth(now)
	case PeriodAllTime:
		return clock.Epoch()
	default:
		return clock.StartOfDay(now)
	}
}

// Workout is the slice of a recorded session the aggregator needs.
type Workout struct {
	Type      string
	StartTime time.Time
	Duration  time.Duration
	Steps     int
	Calories  float64
}

type PeriodStats struct {
	Period           Period
	Since            time.Time
	TotalWorkouts    int
	TotalSteps       int64
	TotalCalories    float64
	TotalDuration    time.Duration
	AverageDuration  time.Duration
	MostFrequentType string
}

type DailyProgress struct {
	Date          time.Time
	Steps         int
	Calories      float64
	ActiveMinutes int
	Workouts      int
}

// MostFrequentType groups workouts by type. Ties go to the type that occurs
// first in workouts.
func MostFrequentType(workouts []Workout) string {
	if len(workouts) == 0 {
		return NoWorkouts
	}
	counts := map[string]int{}
	order := []string{}
	for _, w := range workouts {
		if counts[w.Type] == 0 {
			order = append(order, w.Type)
		}
		counts[w.Type]++
	}
	best := order[0]
	for _, t := range order[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}

func Summarize(date time.Time, workouts []Workout) DailyProgress {
	progress := DailyProgress{Date: date, Workouts: len(workouts)}
	var duration time.Duration
	for _, w := range workouts {
		progress.Steps += w.Steps
		progress.Calories += w.Calories
		duration += w.Duration
	}
	progress.ActiveMinutes = int(duration.Milliseconds() / 60000)
	return progress
}
