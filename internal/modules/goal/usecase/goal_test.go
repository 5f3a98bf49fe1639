package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	goalout "watchtrainer/internal/modules/goal/adapter/out"
	goaldto "watchtrainer/internal/modules/goal/dto"
	goalin "watchtrainer/internal/modules/goal/port/in"
	"watchtrainer/internal/modules/goal/service"
	"watchtrainer/internal/modules/goal/usecase"
	historyout "watchtrainer/internal/modules/history/adapter/out"
	historydto "watchtrainer/internal/modules/history/dto"
	historyin "watchtrainer/internal/modules/history/port/in"
	historyservice "watchtrainer/internal/modules/history/service"
	historyusecase "watchtrainer/internal/modules/history/usecase"
	apperrors "watchtrainer/internal/platform/errors"
	"watchtrainer/internal/platform/sqlitedb"
	"watchtrainer/internal/platform/tx"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Wednesday afternoon.
var now = time.Date(2026, 2, 25, 15, 0, 0, 0, time.UTC)

type fixture struct {
	history historyin.Usecase
	goals   goalin.Usecase
	clock   *fixedClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, filepath.Join(t.TempDir(), "watchtrainer.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sessions, err := historyout.NewSQLiteSessionStore(ctx, db, time.UTC)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	history := historyusecase.NewInteractor(historyservice.NewHistoryService(sessions))

	store, err := goalout.NewSQLiteGoalStore(ctx, db, time.UTC)
	if err != nil {
		t.Fatalf("goal store: %v", err)
	}
	clk := &fixedClock{now: now}
	svc := service.NewGoalService(clk, store, goalout.NewHistoryAggregates(history), tx.NewSQLManager(db))
	return fixture{history: history, goals: usecase.NewInteractor(svc, clk), clock: clk}
}

func (f fixture) record(t *testing.T, id string, start time.Time, minutes, steps int, calories float64) {
	t.Helper()
	_, err := f.history.Append(context.Background(), historydto.AppendInput{
		ID:             id,
		StartTime:      start,
		EndTime:        start.Add(time.Duration(minutes) * time.Minute),
		WorkoutType:    "walking",
		TotalSteps:     steps,
		CaloriesBurned: calories,
	})
	if err != nil {
		t.Fatalf("append %s: %v", id, err)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.goals.CreateGoal(ctx, goaldto.CreateGoalInput{Type: "daily_steps", Target: 0}); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for zero target, got %v", err)
	}
	if _, err := f.goals.CreateGoal(ctx, goaldto.CreateGoalInput{Type: "hourly_steps", Target: 10}); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}

	deadline := now.AddDate(0, 0, 3)
	goal, err := f.goals.CreateGoal(ctx, goaldto.CreateGoalInput{Type: "weekly_calories", Target: 1200, Deadline: &deadline})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if goal.ID == 0 || !goal.Active || goal.Current != 0 || goal.Unit != "kcal" {
		t.Fatalf("unexpected new goal: %+v", goal)
	}
	if goal.DaysLeft == nil || *goal.DaysLeft != 3 {
		t.Fatalf("expected 3 days left, got %v", goal.DaysLeft)
	}
}

func TestListActiveGoalsOrderedByID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	for _, in := range []goaldto.CreateGoalInput{
		{Type: "monthly_workouts", Target: 12},
		{Type: "daily_steps", Target: 8000},
		{Type: "weekly_active_minutes", Target: 150},
	} {
		if _, err := f.goals.CreateGoal(ctx, in); err != nil {
			t.Fatalf("create %s: %v", in.Type, err)
		}
	}
	goals, err := f.goals.ListActiveGoals(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 3 {
		t.Fatalf("expected 3 goals, got %d", len(goals))
	}
	for i := 1; i < len(goals); i++ {
		if goals[i-1].ID >= goals[i].ID {
			t.Fatalf("goals must be ordered by id: %+v", goals)
		}
	}
}

func TestRefreshCompletesDailyStepsGoal(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	goal, err := f.goals.CreateGoal(ctx, goaldto.CreateGoalInput{Type: "daily_steps", Target: 5000})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.record(t, "yesterday", now.AddDate(0, 0, -1), 30, 9000, 300)
	f.record(t, "morning", now.Add(-6*time.Hour), 30, 3000, 120)

	refresh, err := f.goals.RefreshProgress(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(refresh.Completed) != 0 || len(refresh.Goals) != 1 || refresh.Goals[0].Current != 3000 {
		t.Fatalf("expected 3000 steps of progress, got %+v", refresh)
	}

	f.record(t, "afternoon", now.Add(-time.Hour), 25, 2500, 100)
	refresh, err = f.goals.RefreshProgress(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(refresh.Completed) != 1 || refresh.Completed[0].ID != goal.ID {
		t.Fatalf("expected goal completion, got %+v", refresh)
	}
	done := refresh.Completed[0]
	if done.Active || done.Current != 5500 || done.CompletedAt == nil || !done.CompletedAt.Equal(now) {
		t.Fatalf("unexpected completed goal: %+v", done)
	}

	active, err := f.goals.ListActiveGoals(ctx)
	if err != nil || len(active) != 0 {
		t.Fatalf("completed goal must leave the active list, got %d (%v)", len(active), err)
	}

	f.clock.Set(now.Add(time.Hour))
	refresh, err = f.goals.RefreshProgress(ctx)
	if err != nil || len(refresh.Completed) != 0 {
		t.Fatalf("completion must not repeat, got %+v (%v)", refresh, err)
	}
	all, err := f.goals.ListGoals(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("list all: %d (%v)", len(all), err)
	}
	if all[0].CompletedAt == nil || !all[0].CompletedAt.Equal(now) || all[0].Progress != 1 {
		t.Fatalf("completion time must be kept: %+v", all[0])
	}
}

func TestRefreshUsesGoalWindows(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	for _, in := range []goaldto.CreateGoalInput{
		{Type: "weekly_steps", Target: 100000},
		{Type: "daily_active_minutes", Target: 600},
		{Type: "monthly_workouts", Target: 20},
		{Type: "weekly_calories", Target: 10000},
	} {
		if _, err := f.goals.CreateGoal(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	f.record(t, "last-month", time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC), 60, 7000, 400)
	f.record(t, "last-week", time.Date(2026, 2, 22, 9, 0, 0, 0, time.UTC), 60, 6000, 300)
	f.record(t, "monday", time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC), 40, 4000, 200)
	f.record(t, "today", time.Date(2026, 2, 25, 7, 0, 0, 0, time.UTC), 90, 1000, 50)
	// 10m59s truncates to 10 active minutes.
	_, err := f.history.Append(ctx, historydto.AppendInput{
		ID:          "short",
		StartTime:   time.Date(2026, 2, 25, 12, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 2, 25, 12, 10, 59, 0, time.UTC),
		WorkoutType: "yoga",
	})
	if err != nil {
		t.Fatalf("append short: %v", err)
	}

	refresh, err := f.goals.RefreshProgress(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	got := map[string]float64{}
	for _, g := range refresh.Goals {
		got[g.Type] = g.Current
	}
	want := map[string]float64{
		"weekly_steps":         5000,
		"daily_active_minutes": 100,
		"monthly_workouts":     4,
		"weekly_calories":      250,
	}
	for goalType, value := range want {
		if got[goalType] != value {
			t.Fatalf("%s: expected %v, got %v", goalType, value, got[goalType])
		}
	}
}

func TestConcurrentRefreshCompletesOnce(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.goals.CreateGoal(ctx, goaldto.CreateGoalInput{Type: "monthly_workouts", Target: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	f.record(t, "one", now.Add(-time.Hour), 10, 100, 10)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refresh, err := f.goals.RefreshProgress(ctx)
			if err != nil {
				t.Errorf("refresh: %v", err)
				return
			}
			mu.Lock()
			completed += len(refresh.Completed)
			mu.Unlock()
		}()
	}
	wg.Wait()
	if completed != 1 {
		t.Fatalf("expected exactly one completion, got %d", completed)
	}
}
