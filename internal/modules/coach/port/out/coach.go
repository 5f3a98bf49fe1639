package out

import (
	"context"

	"watchtrainer/internal/modules/coach/domain"
)

type Generator interface {
	Generate(ctx context.Context, request domain.Request) (string, error)
}

type Activity struct {
	State        string
	SelectedType string
}

type ActivitySource interface {
	Activity(ctx context.Context) (Activity, error)
}

type Health struct {
	Steps     int
	HeartRate int
	Calories  float64
}

type HealthSource interface {
	Health(ctx context.Context) (Health, error)
}

type WeatherSource interface {
	Weather(ctx context.Context) (domain.Weather, error)
}

type FallbackRecorder interface {
	Fallback(kind domain.Kind)
}
