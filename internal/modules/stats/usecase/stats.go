package usecase

import (
	"context"

	"watchtrainer/internal/modules/stats/domain"
	statsdto "watchtrainer/internal/modules/stats/dto"
	statsin "watchtrainer/internal/modules/stats/port/in"
	"watchtrainer/internal/modules/stats/service"
)

type Interactor struct {
	svc *service.StatsService
}

func NewInteractor(svc *service.StatsService) statsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ComputeStats(ctx context.Context, rawPeriod string) (statsdto.PeriodStatsOutput, error) {
	period, err := domain.ParsePeriod(rawPeriod)
	if err != nil {
		return statsdto.PeriodStatsOutput{}, err
	}
	stats := i.svc.Compute(ctx, period)
	return statsdto.PeriodStatsOutput{
		Period:            string(stats.Period),
		Since:             stats.Since,
		TotalWorkouts:     stats.TotalWorkouts,
		TotalSteps:        stats.TotalSteps,
		TotalCalories:     stats.TotalCalories,
		TotalDurationMS:   stats.TotalDuration.Milliseconds(),
		AverageDurationMS: stats.AverageDuration.Milliseconds(),
		MostFrequentType:  stats.MostFrequentType,
	}, nil
}

func (i *Interactor) ComputeWeeklyBreakdown(ctx context.Context) ([]statsdto.DailyProgressOutput, error) {
	days := i.svc.WeeklyBreakdown(ctx)
	out := make([]statsdto.DailyProgressOutput, 0, len(days))
	for _, day := range days {
		out = append(out, statsdto.DailyProgressOutput{
			Date:          day.Date,
			Weekday:       day.Date.Weekday().String()[:3],
			Steps:         day.Steps,
			Calories:      day.Calories,
			ActiveMinutes: day.ActiveMinutes,
			Workouts:      day.Workouts,
		})
	}
	return out, nil
}
