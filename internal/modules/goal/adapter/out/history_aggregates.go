package out

import (
	"context"
	"time"

	goalout "watchtrainer/internal/modules/goal/port/out"
	historyin "watchtrainer/internal/modules/history/port/in"
)

// HistoryAggregates measures goals against the workout history module.
type HistoryAggregates struct {
	history historyin.Usecase
}

func NewHistoryAggregates(history historyin.Usecase) goalout.Aggregates {
	return HistoryAggregates{history: history}
}

func (a HistoryAggregates) SumStepsSince(ctx context.Context, since time.Time) (int64, error) {
	return a.history.SumStepsSince(ctx, since)
}

func (a HistoryAggregates) SumCaloriesSince(ctx context.Context, since time.Time) (float64, error) {
	return a.history.SumCaloriesSince(ctx, since)
}

func (a HistoryAggregates) SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error) {
	return a.history.SumDurationSince(ctx, since)
}

func (a HistoryAggregates) CountSince(ctx context.Context, since time.Time) (int, error) {
	return a.history.CountSince(ctx, since)
}
