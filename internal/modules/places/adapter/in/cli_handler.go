package in

import (
	"context"

	placesdto "watchtrainer/internal/modules/places/dto"
	placesin "watchtrainer/internal/modules/places/port/in"
)

type CLIHandler struct {
	usecase placesin.Usecase
}

func NewCLIHandler(usecase placesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Suggest(ctx context.Context, workoutType string) (placesdto.SuggestionOutput, error) {
	return h.usecase.Suggest(ctx, workoutType)
}
