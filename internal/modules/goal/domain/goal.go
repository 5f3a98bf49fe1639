package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"watchtrainer/internal/platform/clock"
	apperrors "watchtrainer/internal/platform/errors"
)

type GoalType string

const (
	DailySteps          GoalType = "daily_steps"
	WeeklySteps         GoalType = "weekly_steps"
	DailyCalories       GoalType = "daily_calories"
	WeeklyCalories      GoalType = "weekly_calories"
	DailyActiveMinutes  GoalType = "daily_active_minutes"
	WeeklyActiveMinutes GoalType = "weekly_active_minutes"
	MonthlyWorkouts     GoalType = "monthly_workouts"
)

var GoalTypes = []GoalType{
	DailySteps, WeeklySteps, DailyCalories, WeeklyCalories, DailyActiveMinutes, WeeklyActiveMinutes, MonthlyWorkouts,
}

type Metric string

const (
	MetricSteps         Metric = "steps"
	MetricCalories      Metric = "calories"
	MetricActiveMinutes Metric = "active_minutes"
	MetricWorkouts      Metric = "workouts"
)

type Window string

const (
	WindowDaily   Window = "daily"
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
)

type measure struct {
	metric Metric
	window Window
}

var measures = map[GoalType]measure{
	DailySteps:          {MetricSteps, WindowDaily},
	WeeklySteps:         {MetricSteps, WindowWeekly},
	DailyCalories:       {MetricCalories, WindowDaily},
	WeeklyCalories:      {MetricCalories, WindowWeekly},
	DailyActiveMinutes:  {MetricActiveMinutes, WindowDaily},
	WeeklyActiveMinutes: {MetricActiveMinutes, WindowWeekly},
	MonthlyWorkouts:     {MetricWorkouts, WindowMonthly},
}

func (t GoalType) Validate() error {
	if _, ok := measures[t]; !ok {
		return apperrors.Validation("unsupported goal type %q", string(t))
	}
	return nil
}

func ParseGoalType(raw string) (GoalType, error) {
	t := GoalType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t GoalType) Metric() Metric { return measures[t].metric }
func (t GoalType) Window() Window { return measures[t].window }

func (t GoalType) Unit() string {
	switch t.Metric() {
	case MetricSteps:
		return "steps"
	case MetricCalories:
		return "kcal"
	case MetricActiveMinutes:
		return "min"
	case MetricWorkouts:
		return "workouts"
	default:
		return ""
	}
}

// Start resolves the window to its local start relative to now.
func (w Window) Start(now time.Time) time.Time {
	switch w {
	case WindowWeekly:
		return clock.StartOfWeek(now)
	case WindowMonthly:
		return clock.StartOfMonth(now)
	default:
		return clock.StartOfDay(now)
	}
}

// ActiveMinutes converts an accumulated duration to whole minutes, truncating.
func ActiveMinutes(d time.Duration) float64 {
	return float64(d.Milliseconds() / 60000)
}

type Goal struct {
	ID           int64
	Type         GoalType
	TargetValue  float64
	CurrentValue float64
	Deadline     *time.Time
	Active       bool
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

func NewGoal(goalType GoalType, target float64, deadline *time.Time, now time.Time) (Goal, error) {
	if err := goalType.Validate(); err != nil {
		return Goal{}, err
	}
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return Goal{}, apperrors.Validation("goal target must be positive, got %v", target)
	}
	if deadline != nil && deadline.Before(now) {
		return Goal{}, apperrors.Validation("goal deadline %s is in the past", deadline.Format(time.RFC3339))
	}
	return Goal{
		Type:        goalType,
		TargetValue: target,
		Active:      true,
		CreatedAt:   now,
		Deadline:    deadline,
	}, nil
}

func (g Goal) Completed() bool {
	return g.CompletedAt != nil
}

// Reached reports whether value satisfies the target. A non-positive target
// is never reached.
func (g Goal) Reached(value float64) bool {
	return g.TargetValue > 0 && value >= g.TargetValue
}

// Progress is current/target clamped to [0,1]; 0 for non-positive targets.
func (g Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, g.CurrentValue/g.TargetValue))
}

// DaysLeft counts calendar days until the deadline, never negative.
func (g Goal) DaysLeft(now time.Time) (int, bool) {
	if g.Deadline == nil {
		return 0, false
	}
	days := int(clock.StartOfDay(g.Deadline.In(now.Location())).Sub(clock.StartOfDay(now)).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days, true
}

func (g Goal) Summary() string {
	unit := g.Type.Unit()
	if g.TargetValue <= 0 {
		return fmt.Sprintf("%s %s", formatValue(g.CurrentValue), unit)
	}
	return fmt.Sprintf("%s / %s %s", formatValue(g.CurrentValue), formatValue(g.TargetValue), unit)
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
