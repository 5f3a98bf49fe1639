package in

import (
	"context"
	"time"

	"watchtrainer/internal/modules/history/dto"
)

type Usecase interface {
	Append(ctx context.Context, input dto.AppendInput) (dto.SessionOutput, error)
	Get(ctx context.Context, id string) (dto.SessionOutput, error)
	QueryBetween(ctx context.Context, start, end time.Time) ([]dto.SessionOutput, error)
	SumStepsSince(ctx context.Context, since time.Time) (int64, error)
	SumCaloriesSince(ctx context.Context, since time.Time) (float64, error)
	SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}
