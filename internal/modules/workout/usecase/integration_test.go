package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	feedout "watchtrainer/internal/modules/feed/adapter/out"
	feeddto "watchtrainer/internal/modules/feed/dto"
	feedservice "watchtrainer/internal/modules/feed/service"
	feedusecase "watchtrainer/internal/modules/feed/usecase"
	goalout "watchtrainer/internal/modules/goal/adapter/out"
	goaldto "watchtrainer/internal/modules/goal/dto"
	goalservice "watchtrainer/internal/modules/goal/service"
	goalusecase "watchtrainer/internal/modules/goal/usecase"
	historyout "watchtrainer/internal/modules/history/adapter/out"
	historyservice "watchtrainer/internal/modules/history/service"
	historyusecase "watchtrainer/internal/modules/history/usecase"
	workoutout "watchtrainer/internal/modules/workout/adapter/out"
	"watchtrainer/internal/modules/workout/domain"
	workoutdto "watchtrainer/internal/modules/workout/dto"
	"watchtrainer/internal/modules/workout/service"
	"watchtrainer/internal/modules/workout/usecase"
	"watchtrainer/internal/platform/sqlitedb"
	"watchtrainer/internal/platform/tx"
	"watchtrainer/internal/telemetry/metrics"
)

func TestEndToEndWorkoutCompletesGoal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	clk := &manualClock{now: morning}

	db, err := sqlitedb.Open(ctx, filepath.Join(dir, "watchtrainer.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sessions, err := historyout.NewSQLiteSessionStore(ctx, db, time.UTC)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	history := historyusecase.NewInteractor(historyservice.NewHistoryService(sessions))
	goalStore, err := goalout.NewSQLiteGoalStore(ctx, db, time.UTC)
	if err != nil {
		t.Fatalf("goal store: %v", err)
	}
	goals := goalusecase.NewInteractor(goalservice.NewGoalService(clk, goalStore, goalout.NewHistoryAggregates(history), tx.NewSQLManager(db)), clk)
	feed := feedusecase.NewInteractor(feedservice.NewFeedService(clk, feedout.NewJSONSnapshotStore(filepath.Join(dir, "feed.json"))))
	t.Cleanup(feed.Close)

	m, registry := metrics.NewTestManagerAndRegistry()
	uc := usecase.NewInteractor(usecase.Dependencies{
		Service:   service.NewWorkoutService(clk, &seqID{}, domain.SnapshotCumulative),
		Store:     workoutout.NewFileStateStore(filepath.Join(dir, "active-session.json")),
		Snapshots: workoutout.NewFeedSnapshots(feed),
		History:   history,
		Goals:     goals,
		Journal:   workoutout.NewMarkdownJournal(filepath.Join(dir, "journal")),
		Observers: []workoutout.Observer{workoutout.NewMetricsObserver(m), workoutout.NewLogObserver()},
	})

	if _, err := goals.CreateGoal(ctx, goaldto.CreateGoalInput{Type: "daily_steps", Target: 1000}); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if _, err := uc.SetWorkoutType(ctx, "running"); err != nil {
		t.Fatalf("set type: %v", err)
	}
	if _, err := uc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.Advance(10 * time.Minute)
	if _, err := feed.Publish(ctx, feeddto.SnapshotInput{Steps: 1200, HeartRate: 130, Calories: 80.0}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	ended, err := uc.End(ctx, workoutdto.EndInput{})
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if len(ended.CompletedGoals) != 1 || ended.CompletedGoals[0] != "daily_steps" {
		t.Fatalf("expected daily_steps goal completion, got %v", ended.CompletedGoals)
	}

	records, err := history.QueryBetween(ctx, morning, morning.Add(time.Hour))
	if err != nil || len(records) != 1 {
		t.Fatalf("expected one stored session, got %d (%v)", len(records), err)
	}
	got := records[0]
	if got.DurationMS != 600000 || got.TotalSteps != 1200 || got.AverageHeartRate != 130 || got.CaloriesBurned != 80 || got.WorkoutType != "running" {
		t.Fatalf("unexpected stored session: %+v", got)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	seen := map[string]bool{}
	for _, family := range families {
		seen[family.GetName()] = true
	}
	for _, name := range []string{"watchtrainer_test_workout_transitions", "watchtrainer_test_workout_sessions"} {
		if !seen[name] {
			t.Fatalf("metric %s was not recorded", name)
		}
	}
}
