package in

import (
	"context"

	feeddto "watchtrainer/internal/modules/feed/dto"
	feedin "watchtrainer/internal/modules/feed/port/in"
)

type CLIHandler struct {
	usecase feedin.Usecase
}

func NewCLIHandler(usecase feedin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Push(ctx context.Context, input feeddto.SnapshotInput) (feeddto.SnapshotOutput, error) {
	return h.usecase.Publish(ctx, input)
}

func (h CLIHandler) Show(ctx context.Context) (feeddto.SnapshotOutput, error) {
	return h.usecase.Latest(ctx)
}
