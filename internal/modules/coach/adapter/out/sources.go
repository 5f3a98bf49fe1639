package out

import (
	"context"

	"watchtrainer/internal/modules/coach/domain"
	coachout "watchtrainer/internal/modules/coach/port/out"
	feedin "watchtrainer/internal/modules/feed/port/in"
	weatherin "watchtrainer/internal/modules/weather/port/in"
	workoutin "watchtrainer/internal/modules/workout/port/in"
)

type WorkoutActivity struct {
	workout workoutin.Usecase
}

func NewWorkoutActivity(workout workoutin.Usecase) coachout.ActivitySource {
	return WorkoutActivity{workout: workout}
}

func (a WorkoutActivity) Activity(ctx context.Context) (coachout.Activity, error) {
	status, err := a.workout.Status(ctx)
	if err != nil {
		return coachout.Activity{}, err
	}
	return coachout.Activity{State: status.State, SelectedType: status.SelectedType}, nil
}

type FeedHealth struct {
	feed feedin.Usecase
}

func NewFeedHealth(feed feedin.Usecase) coachout.HealthSource {
	return FeedHealth{feed: feed}
}

func (h FeedHealth) Health(ctx context.Context) (coachout.Health, error) {
	snapshot, err := h.feed.Latest(ctx)
	if err != nil {
		return coachout.Health{}, err
	}
	return coachout.Health{Steps: snapshot.Steps, HeartRate: snapshot.HeartRate, Calories: snapshot.Calories}, nil
}

type LatestWeather struct {
	weather weatherin.Usecase
}

func NewLatestWeather(weather weatherin.Usecase) coachout.WeatherSource {
	return LatestWeather{weather: weather}
}

func (w LatestWeather) Weather(ctx context.Context) (domain.Weather, error) {
	current, err := w.weather.Latest(ctx)
	if err != nil {
		return domain.Weather{}, err
	}
	return domain.Weather{
		Temperature: current.Temperature,
		FeelsLike:   current.FeelsLike,
		Humidity:    current.Humidity,
		Description: current.Description,
	}, nil
}
