package in

import (
	"context"

	weatherdto "watchtrainer/internal/modules/weather/dto"
	weatherin "watchtrainer/internal/modules/weather/port/in"
)

type CLIHandler struct {
	usecase weatherin.Usecase
}

func NewCLIHandler(usecase weatherin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (weatherdto.WeatherOutput, error) {
	return h.usecase.Current(ctx)
}
