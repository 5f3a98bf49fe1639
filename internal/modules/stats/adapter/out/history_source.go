package out

import (
	"context"
	"time"

	historyin "watchtrainer/internal/modules/history/port/in"
	"watchtrainer/internal/modules/stats/domain"
	statsout "watchtrainer/internal/modules/stats/port/out"
)

type HistorySource struct {
	history historyin.Usecase
}

func NewHistorySource(history historyin.Usecase) statsout.WorkoutSource {
	return HistorySource{history: history}
}

func (s HistorySource) QueryBetween(ctx context.Context, start, end time.Time) ([]domain.Workout, error) {
	sessions, err := s.history.QueryBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	workouts := make([]domain.Workout, 0, len(sessions))
	for _, session := range sessions {
		workouts = append(workouts, domain.Workout{
			Type:      session.WorkoutType,
			StartTime: session.StartTime,
			Duration:  session.Duration,
			Steps:     session.TotalSteps,
			Calories:  session.CaloriesBurned,
		})
	}
	return workouts, nil
}

func (s HistorySource) SumStepsSince(ctx context.Context, since time.Time) (int64, error) {
	return s.history.SumStepsSince(ctx, since)
}

func (s HistorySource) SumCaloriesSince(ctx context.Context, since time.Time) (float64, error) {
	return s.history.SumCaloriesSince(ctx, since)
}

func (s HistorySource) SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error) {
	return s.history.SumDurationSince(ctx, since)
}
