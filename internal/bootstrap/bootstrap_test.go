package bootstrap

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeddto "watchtrainer/internal/modules/feed/dto"
	"watchtrainer/internal/platform/config"
)

func TestAppRecordsWorkoutEndToEnd(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.SnapshotMode = config.SnapshotDelta
	ctx := context.Background()

	app, err := New(ctx, cfg)
	require.NoError(t, err)

	_, err = app.GoalCLI.Create(ctx, "daily_steps", 1000, nil)
	require.NoError(t, err)
	_, err = app.FeedCLI.Push(ctx, feeddto.SnapshotInput{Steps: 1000, HeartRate: 90, Calories: 40})
	require.NoError(t, err)
	_, err = app.WorkoutCLI.SetType(ctx, "running")
	require.NoError(t, err)

	started, err := app.WorkoutCLI.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, "running", started.WorkoutType)

	_, err = app.FeedCLI.Push(ctx, feeddto.SnapshotInput{Steps: 2500, HeartRate: 140, Calories: 150})
	require.NoError(t, err)

	ended, err := app.WorkoutCLI.End(ctx, "intervals")
	require.NoError(t, err)
	assert.Equal(t, 1500, ended.TotalSteps)
	assert.Equal(t, 140, ended.AverageHR)
	assert.InDelta(t, 110, ended.CaloriesBurned, 0.001)
	assert.Equal(t, []string{"daily_steps"}, ended.CompletedGoals)
	require.NotEmpty(t, ended.JournalPath)
	_, err = os.Stat(ended.JournalPath)
	require.NoError(t, err)

	status, err := app.WorkoutCLI.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "idle", status.State)

	stats, err := app.StatsCLI.Show(ctx, "today")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalWorkouts)
	assert.Equal(t, "running", stats.MostFrequentType)

	coach, err := app.CoachCLI.Message(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fallback", coach.Source)
	assert.Contains(t, coach.Text, "2500 steps")

	places, err := app.PlacesCLI.Suggest(ctx, "running")
	require.NoError(t, err)
	assert.False(t, places.Indoor)

	require.NoError(t, app.Close())
}

func TestAppRejectsUnknownDefaultType(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.DefaultWorkoutType = "parkour"

	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}
