package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"watchtrainer/internal/modules/weather/domain"
	weatherout "watchtrainer/internal/modules/weather/port/out"
	"watchtrainer/internal/platform/clock"
)

type WeatherService struct {
	clock    clock.Clock
	provider weatherout.Provider
	city     string
}

func NewWeatherService(clk clock.Clock, provider weatherout.Provider, city string) *WeatherService {
	return &WeatherService{clock: clk, provider: provider, city: city}
}

func (s *WeatherService) Current(ctx context.Context) domain.Weather {
	if s.provider == nil {
		return domain.Default(s.city, s.clock.Now())
	}
	current, err := s.provider.Current(ctx, s.city)
	if err != nil {
		log.WithError(err).WithField("city", s.city).Warn("weather unavailable, using default conditions")
		return domain.Default(s.city, s.clock.Now())
	}
	if current.ObservedAt.IsZero() {
		current.ObservedAt = s.clock.Now()
	}
	return current
}

func (s *WeatherService) Fallback() domain.Weather {
	return domain.Default(s.city, s.clock.Now())
}
