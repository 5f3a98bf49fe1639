package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"

	historyout "watchtrainer/internal/modules/history/adapter/out"
	historydto "watchtrainer/internal/modules/history/dto"
	historyin "watchtrainer/internal/modules/history/port/in"
	"watchtrainer/internal/modules/history/service"
	"watchtrainer/internal/modules/history/usecase"
	apperrors "watchtrainer/internal/platform/errors"
	"watchtrainer/internal/platform/sqlitedb"
	"watchtrainer/internal/platform/tx"
)

var base = time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)

func newHistory(t testing.TB, dir string) historyin.Usecase {
	t.Helper()
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, filepath.Join(dir, "watchtrainer.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store, err := historyout.NewSQLiteSessionStore(ctx, db, time.UTC)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return usecase.NewInteractor(service.NewHistoryService(store))
}

func session(id string, start time.Time, minutes int, steps int) historydto.AppendInput {
	return historydto.AppendInput{
		ID:               id,
		StartTime:        start,
		EndTime:          start.Add(time.Duration(minutes) * time.Minute),
		WorkoutType:      "running",
		TotalSteps:       steps,
		AverageHeartRate: 120,
		CaloriesBurned:   float64(steps) / 20,
		Distance:         float64(steps) * 0.7,
	}
}

func TestAppendAndQueryBetweenOrdersNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHistory(t, t.TempDir())

	for _, in := range []historydto.AppendInput{
		session("a", base.Add(8*time.Hour), 30, 3000),
		session("b", base.Add(18*time.Hour), 10, 1000),
		session("c", base.Add(12*time.Hour), 20, 2000),
		session("old", base.Add(-time.Hour), 20, 9999),
	} {
		if _, err := uc.Append(ctx, in); err != nil {
			t.Fatalf("append %s: %v", in.ID, err)
		}
	}

	got, err := uc.QueryBetween(ctx, base, base.Add(24*time.Hour-time.Millisecond))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions in window, got %d", len(got))
	}
	for i, want := range []string{"b", "c", "a"} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
	if got[0].Duration != 10*time.Minute || got[0].DurationMS != 600000 {
		t.Fatalf("unexpected duration: %s", got[0].Duration)
	}

	bounds, err := uc.QueryBetween(ctx, base.Add(8*time.Hour), base.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("query bounds: %v", err)
	}
	if len(bounds) != 2 {
		t.Fatalf("expected inclusive bounds to match 2 sessions, got %d", len(bounds))
	}

	again, err := uc.QueryBetween(ctx, base, base.Add(24*time.Hour-time.Millisecond))
	if err != nil || len(again) != 3 {
		t.Fatalf("re-query must yield the same snapshot, got %d (%v)", len(again), err)
	}
}

func TestAggregatesReturnZeroWithoutRows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHistory(t, t.TempDir())

	steps, err := uc.SumStepsSince(ctx, base)
	if err != nil || steps != 0 {
		t.Fatalf("steps: %d (%v)", steps, err)
	}
	calories, err := uc.SumCaloriesSince(ctx, base)
	if err != nil || calories != 0 {
		t.Fatalf("calories: %f (%v)", calories, err)
	}
	duration, err := uc.SumDurationSince(ctx, base)
	if err != nil || duration != 0 {
		t.Fatalf("duration: %s (%v)", duration, err)
	}
	count, err := uc.CountSince(ctx, base)
	if err != nil || count != 0 {
		t.Fatalf("count: %d (%v)", count, err)
	}
}

func TestAggregatesOnlyCountSessionsSinceWindowStart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHistory(t, t.TempDir())
	for _, in := range []historydto.AppendInput{
		session("before", base.Add(-time.Minute), 15, 500),
		session("at", base, 10, 1200),
		session("after", base.Add(time.Hour), 5, 300),
	} {
		if _, err := uc.Append(ctx, in); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	steps, _ := uc.SumStepsSince(ctx, base)
	if steps != 1500 {
		t.Fatalf("expected 1500 steps, got %d", steps)
	}
	calories, _ := uc.SumCaloriesSince(ctx, base)
	if calories != 75 {
		t.Fatalf("expected 75 kcal, got %f", calories)
	}
	duration, _ := uc.SumDurationSince(ctx, base)
	if duration != 15*time.Minute {
		t.Fatalf("expected 15m, got %s", duration)
	}
	count, _ := uc.CountSince(ctx, base)
	if count != 2 {
		t.Fatalf("expected 2 sessions, got %d", count)
	}
}

func TestAppendRejectsUnfinishedOrInvertedSessions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHistory(t, t.TempDir())

	open := session("open", base, 10, 10)
	open.EndTime = time.Time{}
	if _, err := uc.Append(ctx, open); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for missing end, got %v", err)
	}

	inverted := session("inverted", base, 10, 10)
	inverted.EndTime = base.Add(-time.Second)
	if _, err := uc.Append(ctx, inverted); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for inverted session, got %v", err)
	}

	count, _ := uc.CountSince(ctx, time.UnixMilli(0))
	if count != 0 {
		t.Fatalf("rejected sessions must not be stored, got %d", count)
	}
}

func TestAppendTwiceIsStorageError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHistory(t, t.TempDir())
	in := session("dup", base, 10, 10)
	if _, err := uc.Append(ctx, in); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if _, err := uc.Append(ctx, in); !errors.Is(err, apperrors.ErrStorage) {
		t.Fatalf("expected storage error on duplicate id, got %v", err)
	}
}

func TestRolledBackAppendIsInvisible(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	db, err := sqlitedb.Open(ctx, filepath.Join(dir, "tx.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	store, err := historyout.NewSQLiteSessionStore(ctx, db, time.UTC)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	uc := usecase.NewInteractor(service.NewHistoryService(store))
	txm := tx.NewSQLManager(db)

	boom := errors.New("boom")
	err = txm.Within(ctx, func(txCtx context.Context) error {
		if _, err := uc.Append(txCtx, session("tx", base, 10, 100)); err != nil {
			return err
		}
		count, err := uc.CountSince(txCtx, base)
		if err != nil || count != 1 {
			t.Fatalf("expected own write inside tx, got %d (%v)", count, err)
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	count, _ := uc.CountSince(ctx, base)
	if count != 0 {
		t.Fatalf("rolled back append must not be visible, got %d", count)
	}
}

func TestSumStepsSinceEqualsArithmeticSum(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	iteration := 0
	rapid.Check(t, func(rt *rapid.T) {
		iteration++
		ctx := context.Background()
		uc := newHistory(t, filepath.Join(dir, fmt.Sprintf("run-%d", iteration)))

		windowStart := base.Add(time.Duration(rapid.IntRange(0, 48).Draw(rt, "windowHour")) * time.Hour)
		n := rapid.IntRange(0, 12).Draw(rt, "sessions")
		var want int64
		for i := 0; i < n; i++ {
			start := base.Add(time.Duration(rapid.IntRange(0, 72*60).Draw(rt, "startMinute")) * time.Minute)
			steps := rapid.IntRange(0, 20000).Draw(rt, "steps")
			if _, err := uc.Append(ctx, session(fmt.Sprintf("s-%d", i), start, rapid.IntRange(0, 90).Draw(rt, "minutes"), steps)); err != nil {
				rt.Fatalf("append: %v", err)
			}
			if !start.Before(windowStart) {
				want += int64(steps)
			}
		}
		got, err := uc.SumStepsSince(ctx, windowStart)
		if err != nil {
			rt.Fatalf("sum steps: %v", err)
		}
		if got != want {
			rt.Fatalf("sum mismatch: got %d want %d", got, want)
		}
	})
}

func TestGetReturnsStoredSessionOrNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newHistory(t, t.TempDir())

	if _, err := uc.Get(ctx, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	in := session("morning-run", base.Add(7*time.Hour), 40, 5200)
	in.Notes = "hill repeats"
	if _, err := uc.Append(ctx, in); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := uc.Get(ctx, "morning-run")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalSteps != 5200 || got.Notes != "hill repeats" || !got.EndTime.Equal(in.EndTime) || got.WorkoutType != "running" {
		t.Fatalf("unexpected session: %+v", got)
	}
}
