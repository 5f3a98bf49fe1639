package in

import (
	"context"
	"time"

	historydto "watchtrainer/internal/modules/history/dto"
	historyin "watchtrainer/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, since, until time.Time) ([]historydto.SessionOutput, error) {
	return h.usecase.QueryBetween(ctx, since, until)
}
