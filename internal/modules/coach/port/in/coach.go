package in

import (
	"context"

	"watchtrainer/internal/modules/coach/dto"
)

type Usecase interface {
	Message(ctx context.Context) (dto.CoachOutput, error)
	// Tip uses the selected workout type when workoutType is empty.
	Tip(ctx context.Context, workoutType string) (dto.CoachOutput, error)
	Quote(ctx context.Context) (dto.CoachOutput, error)
}
