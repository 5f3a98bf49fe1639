package out

import (
	"context"
	"fmt"

	"watchtrainer/internal/modules/places/domain"
	placesout "watchtrainer/internal/modules/places/port/out"
	weatherin "watchtrainer/internal/modules/weather/port/in"
)

type WeatherConditions struct {
	weather weatherin.Usecase
}

func NewWeatherConditions(weather weatherin.Usecase) placesout.ConditionsSource {
	return WeatherConditions{weather: weather}
}

func (w WeatherConditions) Current(ctx context.Context) (domain.Conditions, string, error) {
	current, err := w.weather.Latest(ctx)
	if err != nil {
		return domain.Conditions{}, "", err
	}
	summary := fmt.Sprintf("%s, %.1f°C, wind %.1f m/s", current.Condition, current.Temperature, current.WindSpeed)
	return domain.Conditions{
		Temperature: current.Temperature,
		WindSpeed:   current.WindSpeed,
		Condition:   current.Condition,
	}, summary, nil
}
