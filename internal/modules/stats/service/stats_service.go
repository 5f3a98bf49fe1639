package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"watchtrainer/internal/modules/stats/domain"
	statsout "watchtrainer/internal/modules/stats/port/out"
	"watchtrainer/internal/platform/clock"
)

type StatsService struct {
	clock  clock.Clock
	source statsout.WorkoutSource
}

func NewStatsService(clk clock.Clock, source statsout.WorkoutSource) *StatsService {
	return &StatsService{clock: clk, source: source}
}

func (s *StatsService) Compute(ctx context.Context, period domain.Period) domain.PeriodStats {
	now := s.clock.Now()
	since := period.Start(now)
	stats := domain.PeriodStats{Period: period, Since: since}

	workouts, err := s.source.QueryBetween(ctx, since, now)
	if err != nil {
		degraded(err, "query workouts", period)
		workouts = nil
	}
	if stats.TotalSteps, err = s.source.SumStepsSince(ctx, since); err != nil {
		degraded(err, "sum steps", period)
		stats.TotalSteps = 0
	}
	if stats.TotalCalories, err = s.source.SumCaloriesSince(ctx, since); err != nil {
		degraded(err, "sum calories", period)
		stats.TotalCalories = 0
	}
	if stats.TotalDuration, err = s.source.SumDurationSince(ctx, since); err != nil {
		degraded(err, "sum duration", period)
		stats.TotalDuration = 0
	}

	stats.TotalWorkouts = len(workouts)
	if stats.TotalWorkouts > 0 {
		stats.AverageDuration = stats.TotalDuration / time.Duration(stats.TotalWorkouts)
	}
	stats.MostFrequentType = domain.MostFrequentType(workouts)
	return stats
}

// WeeklyBreakdown returns Monday..Sunday of the current week. Day bounds use
// calendar arithmetic so DST days keep their true length.
func (s *StatsService) WeeklyBreakdown(ctx context.Context) []domain.DailyProgress {
	weekStart := clock.StartOfWeek(s.clock.Now())
	days := make([]domain.DailyProgress, 0, 7)
	for i := 0; i < 7; i++ {
		dayStart := weekStart.AddDate(0, 0, i)
		workouts, err := s.source.QueryBetween(ctx, dayStart, clock.EndOfDay(dayStart))
		if err != nil {
			log.WithError(err).WithField("day", dayStart.Format("2006-01-02")).Warn("stats degraded: query day")
			workouts = nil
		}
		days = append(days, domain.Summarize(dayStart, workouts))
	}
	return days
}

func degraded(err error, op string, period domain.Period) {
	log.WithError(err).WithFields(log.Fields{"op": op, "period": period}).Warn("stats degraded")
}
