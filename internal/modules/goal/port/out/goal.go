package out

import (
	"context"
	"time"

	"watchtrainer/internal/modules/goal/domain"
)

type GoalStore interface {
	Create(ctx context.Context, goal domain.Goal) (domain.Goal, error)
	ListActive(ctx context.Context) ([]domain.Goal, error)
	ListAll(ctx context.Context) ([]domain.Goal, error)
	UpdateProgress(ctx context.Context, id int64, value float64) error
	// Complete records the final value and deactivates the goal. It reports
	// false when the goal had already been completed.
	Complete(ctx context.Context, id int64, value float64, at time.Time) (bool, error)
}

// Aggregates reads the recorded workout totals a goal is measured against.
type Aggregates interface {
	SumStepsSince(ctx context.Context, since time.Time) (int64, error)
	SumCaloriesSince(ctx context.Context, since time.Time) (float64, error)
	SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}
