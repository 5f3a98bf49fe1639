package in

import (
	"context"

	"watchtrainer/internal/modules/places/dto"
)

type Usecase interface {
	Suggest(ctx context.Context, workoutType string) (dto.SuggestionOutput, error)
}
