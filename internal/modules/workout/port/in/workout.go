package in

import (
	"context"

	"watchtrainer/internal/modules/workout/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.SessionOutput, error)
	Stop(ctx context.Context) (dto.SessionOutput, error)
	Resume(ctx context.Context) (dto.SessionOutput, error)
	End(ctx context.Context, input dto.EndInput) (dto.EndOutput, error)
	SetWorkoutType(ctx context.Context, workoutType string) (dto.StatusOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}
