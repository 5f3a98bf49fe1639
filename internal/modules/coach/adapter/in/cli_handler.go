package in

import (
	"context"

	coachdto "watchtrainer/internal/modules/coach/dto"
	coachin "watchtrainer/internal/modules/coach/port/in"
)

type CLIHandler struct {
	usecase coachin.Usecase
}

func NewCLIHandler(usecase coachin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Message(ctx context.Context) (coachdto.CoachOutput, error) {
	return h.usecase.Message(ctx)
}

func (h CLIHandler) Tip(ctx context.Context, workoutType string) (coachdto.CoachOutput, error) {
	return h.usecase.Tip(ctx, workoutType)
}

func (h CLIHandler) Quote(ctx context.Context) (coachdto.CoachOutput, error) {
	return h.usecase.Quote(ctx)
}
