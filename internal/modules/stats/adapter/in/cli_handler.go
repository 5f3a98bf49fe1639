package in

import (
	"context"

	statsdto "watchtrainer/internal/modules/stats/dto"
	statsin "watchtrainer/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context, period string) (statsdto.PeriodStatsOutput, error) {
	return h.usecase.ComputeStats(ctx, period)
}

func (h CLIHandler) Week(ctx context.Context) ([]statsdto.DailyProgressOutput, error) {
	return h.usecase.ComputeWeeklyBreakdown(ctx)
}
