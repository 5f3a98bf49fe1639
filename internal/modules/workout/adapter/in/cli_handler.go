package in

import (
	"context"

	workoutdto "watchtrainer/internal/modules/workout/dto"
	workoutin "watchtrainer/internal/modules/workout/port/in"
)

type CLIHandler struct {
	usecase workoutin.Usecase
}

func NewCLIHandler(usecase workoutin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (workoutdto.SessionOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (workoutdto.SessionOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (workoutdto.SessionOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) End(ctx context.Context, notes string) (workoutdto.EndOutput, error) {
	return h.usecase.End(ctx, workoutdto.EndInput{Notes: notes})
}

func (h CLIHandler) SetType(ctx context.Context, workoutType string) (workoutdto.StatusOutput, error) {
	return h.usecase.SetWorkoutType(ctx, workoutType)
}

func (h CLIHandler) Status(ctx context.Context) (workoutdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
