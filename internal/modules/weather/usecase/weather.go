package usecase

import (
	"context"

	"watchtrainer/internal/modules/weather/domain"
	weatherdto "watchtrainer/internal/modules/weather/dto"
	weatherin "watchtrainer/internal/modules/weather/port/in"
	"watchtrainer/internal/modules/weather/service"
	"watchtrainer/internal/platform/pubsub"
)

type Interactor struct {
	svc    *service.WeatherService
	broker *pubsub.Broker[weatherdto.WeatherOutput]
}

func NewInteractor(svc *service.WeatherService) weatherin.Usecase {
	return &Interactor{svc: svc, broker: pubsub.NewBroker[weatherdto.WeatherOutput]()}
}

func (i *Interactor) Current(ctx context.Context) (weatherdto.WeatherOutput, error) {
	out := toOutput(i.svc.Current(ctx))
	i.broker.Publish(out)
	return out, nil
}

// Latest returns the last broadcast value without calling the provider, or
// fetches once when nothing has been broadcast yet.
func (i *Interactor) Latest(ctx context.Context) (weatherdto.WeatherOutput, error) {
	if latest, ok := i.broker.Latest(); ok {
		return latest, nil
	}
	return i.Current(ctx)
}

func (i *Interactor) Subscribe() (<-chan weatherdto.WeatherOutput, func()) {
	return i.broker.Subscribe()
}

func (i *Interactor) Close() {
	i.broker.Close()
}

func toOutput(w domain.Weather) weatherdto.WeatherOutput {
	return weatherdto.WeatherOutput{
		City:           w.City,
		Temperature:    w.Temperature,
		FeelsLike:      w.FeelsLike,
		Humidity:       w.Humidity,
		WindSpeed:      w.WindSpeed,
		Description:    w.Description,
		Condition:      string(w.Condition),
		Recommendation: domain.Recommendation(w),
		ObservedAt:     w.ObservedAt,
		Fallback:       w.Fallback,
	}
}
