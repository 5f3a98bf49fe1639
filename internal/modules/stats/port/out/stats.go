package out

import (
	"context"
	"time"

	"watchtrainer/internal/modules/stats/domain"
)

type WorkoutSource interface {
	QueryBetween(ctx context.Context, start, end time.Time) ([]domain.Workout, error)
	SumStepsSince(ctx context.Context, since time.Time) (int64, error)
	SumCaloriesSince(ctx context.Context, since time.Time) (float64, error)
	SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error)
}
