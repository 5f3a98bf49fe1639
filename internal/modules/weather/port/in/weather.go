package in

import (
	"context"

	"watchtrainer/internal/modules/weather/dto"
)

type Usecase interface {
	// Current fetches fresh conditions and broadcasts them. It always yields
	// a value; provider failures fall back to default weather.
	Current(ctx context.Context) (dto.WeatherOutput, error)
	Latest(ctx context.Context) (dto.WeatherOutput, error)
	Subscribe() (updates <-chan dto.WeatherOutput, cancel func())
	Close()
}
