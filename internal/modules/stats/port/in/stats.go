package in

import (
	"context"

	"watchtrainer/internal/modules/stats/dto"
)

// Usecase never fails on storage errors: unreadable aggregates are reported
// as zero.
type Usecase interface {
	ComputeStats(ctx context.Context, period string) (dto.PeriodStatsOutput, error)
	ComputeWeeklyBreakdown(ctx context.Context) ([]dto.DailyProgressOutput, error)
}
