package in

import (
	"context"

	"watchtrainer/internal/modules/goal/dto"
)

type Usecase interface {
	CreateGoal(ctx context.Context, input dto.CreateGoalInput) (dto.GoalOutput, error)
	ListActiveGoals(ctx context.Context) ([]dto.GoalOutput, error)
	ListGoals(ctx context.Context) ([]dto.GoalOutput, error)
	RefreshProgress(ctx context.Context) (dto.RefreshOutput, error)
}
