package usecase

import (
	"context"

	"watchtrainer/internal/modules/goal/domain"
	goaldto "watchtrainer/internal/modules/goal/dto"
	goalin "watchtrainer/internal/modules/goal/port/in"
	"watchtrainer/internal/modules/goal/service"
	"watchtrainer/internal/platform/clock"
)

type Interactor struct {
	svc   *service.GoalService
	clock clock.Clock
}

func NewInteractor(svc *service.GoalService, clk clock.Clock) goalin.Usecase {
	return &Interactor{svc: svc, clock: clk}
}

func (i *Interactor) CreateGoal(ctx context.Context, input goaldto.CreateGoalInput) (goaldto.GoalOutput, error) {
	goalType, err := domain.ParseGoalType(input.Type)
	if err != nil {
		return goaldto.GoalOutput{}, err
	}
	goal, err := i.svc.Create(ctx, goalType, input.Target, input.Deadline)
	if err != nil {
		return goaldto.GoalOutput{}, err
	}
	return i.toOutput(goal), nil
}

func (i *Interactor) ListActiveGoals(ctx context.Context) ([]goaldto.GoalOutput, error) {
	goals, err := i.svc.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return i.toOutputs(goals), nil
}

func (i *Interactor) ListGoals(ctx context.Context) ([]goaldto.GoalOutput, error) {
	goals, err := i.svc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return i.toOutputs(goals), nil
}

func (i *Interactor) RefreshProgress(ctx context.Context) (goaldto.RefreshOutput, error) {
	result, err := i.svc.Refresh(ctx)
	if err != nil {
		return goaldto.RefreshOutput{}, err
	}
	return goaldto.RefreshOutput{
		Goals:     i.toOutputs(result.Goals),
		Completed: i.toOutputs(result.Completed),
	}, nil
}

func (i *Interactor) toOutputs(goals []domain.Goal) []goaldto.GoalOutput {
	out := make([]goaldto.GoalOutput, 0, len(goals))
	for _, g := range goals {
		out = append(out, i.toOutput(g))
	}
	return out
}

func (i *Interactor) toOutput(g domain.Goal) goaldto.GoalOutput {
	out := goaldto.GoalOutput{
		ID:          g.ID,
		Type:        string(g.Type),
		Unit:        g.Type.Unit(),
		Target:      g.TargetValue,
		Current:     g.CurrentValue,
		Progress:    g.Progress(),
		Active:      g.Active,
		Summary:     g.Summary(),
		CreatedAt:   g.CreatedAt,
		Deadline:    g.Deadline,
		CompletedAt: g.CompletedAt,
	}
	if days, ok := g.DaysLeft(i.clock.Now()); ok {
		out.DaysLeft = &days
	}
	return out
}
