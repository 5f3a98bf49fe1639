package usecase

import (
	"context"
	"time"

	"watchtrainer/internal/modules/history/domain"
	historydto "watchtrainer/internal/modules/history/dto"
	historyin "watchtrainer/internal/modules/history/port/in"
	"watchtrainer/internal/modules/history/service"
)

type Interactor struct {
	svc *service.HistoryService
}

func NewInteractor(svc *service.HistoryService) historyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Append(ctx context.Context, input historydto.AppendInput) (historydto.SessionOutput, error) {
	workoutType, err := domain.ParseWorkoutType(input.WorkoutType)
	if err != nil {
		return historydto.SessionOutput{}, err
	}
	session := domain.Session{
		ID:               input.ID,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		WorkoutType:      workoutType,
		TotalSteps:       input.TotalSteps,
		AverageHeartRate: input.AverageHeartRate,
		CaloriesBurned:   input.CaloriesBurned,
		Distance:         input.Distance,
		Notes:            input.Notes,
	}
	if err := i.svc.Append(ctx, session); err != nil {
		return historydto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Get(ctx context.Context, id string) (historydto.SessionOutput, error) {
	session, err := i.svc.Get(ctx, id)
	if err != nil {
		return historydto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) QueryBetween(ctx context.Context, start, end time.Time) ([]historydto.SessionOutput, error) {
	sessions, err := i.svc.QueryBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]historydto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toOutput(s))
	}
	return out, nil
}

func (i *Interactor) SumStepsSince(ctx context.Context, since time.Time) (int64, error) {
	return i.svc.SumStepsSince(ctx, since)
}

func (i *Interactor) SumCaloriesSince(ctx context.Context, since time.Time) (float64, error) {
	return i.svc.SumCaloriesSince(ctx, since)
}

func (i *Interactor) SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error) {
	return i.svc.SumDurationSince(ctx, since)
}

func (i *Interactor) CountSince(ctx context.Context, since time.Time) (int, error) {
	return i.svc.CountSince(ctx, since)
}

func toOutput(s domain.Session) historydto.SessionOutput {
	return historydto.SessionOutput{
		ID:               s.ID,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		WorkoutType:      string(s.WorkoutType),
		Duration:         s.Duration(),
		DurationMS:       s.Duration().Milliseconds(),
		TotalSteps:       s.TotalSteps,
		AverageHeartRate: s.AverageHeartRate,
		CaloriesBurned:   s.CaloriesBurned,
		Distance:         s.Distance,
		Notes:            s.Notes,
	}
}
