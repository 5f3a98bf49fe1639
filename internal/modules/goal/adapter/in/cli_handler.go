package in

import (
	"context"
	"time"

	goaldto "watchtrainer/internal/modules/goal/dto"
	goalin "watchtrainer/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, goalType string, target float64, deadline *time.Time) (goaldto.GoalOutput, error) {
	return h.usecase.CreateGoal(ctx, goaldto.CreateGoalInput{Type: goalType, Target: target, Deadline: deadline})
}

// List returns active goals, or every goal when all is set.
func (h CLIHandler) List(ctx context.Context, all bool) ([]goaldto.GoalOutput, error) {
	if all {
		return h.usecase.ListGoals(ctx)
	}
	return h.usecase.ListActiveGoals(ctx)
}

func (h CLIHandler) Refresh(ctx context.Context) (goaldto.RefreshOutput, error) {
	return h.usecase.RefreshProgress(ctx)
}
