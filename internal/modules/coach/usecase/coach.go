package usecase

import (
	"context"

	log "github.com/sirupsen/logrus"

	"watchtrainer/internal/modules/coach/domain"
	coachdto "watchtrainer/internal/modules/coach/dto"
	coachin "watchtrainer/internal/modules/coach/port/in"
	coachout "watchtrainer/internal/modules/coach/port/out"
	"watchtrainer/internal/modules/coach/service"
	historydomain "watchtrainer/internal/modules/history/domain"
)

type Sources struct {
	Activity coachout.ActivitySource
	Health   coachout.HealthSource
	// Weather is optional.
	Weather coachout.WeatherSource
}

type Interactor struct {
	svc     *service.CoachService
	sources Sources
}

func NewInteractor(svc *service.CoachService, sources Sources) coachin.Usecase {
	return &Interactor{svc: svc, sources: sources}
}

func (i *Interactor) Message(ctx context.Context) (coachdto.CoachOutput, error) {
	c, err := i.context(ctx)
	if err != nil {
		return coachdto.CoachOutput{}, err
	}
	return toOutput(i.svc.Message(ctx, c)), nil
}

func (i *Interactor) Tip(ctx context.Context, rawType string) (coachdto.CoachOutput, error) {
	if rawType == "" {
		activity, err := i.sources.Activity.Activity(ctx)
		if err != nil {
			return coachdto.CoachOutput{}, err
		}
		rawType = activity.SelectedType
	}
	workoutType, err := historydomain.ParseWorkoutType(rawType)
	if err != nil {
		return coachdto.CoachOutput{}, err
	}
	return toOutput(i.svc.Tip(ctx, string(workoutType))), nil
}

func (i *Interactor) Quote(ctx context.Context) (coachdto.CoachOutput, error) {
	return toOutput(i.svc.Quote(ctx)), nil
}

func (i *Interactor) context(ctx context.Context) (domain.Context, error) {
	activity, err := i.sources.Activity.Activity(ctx)
	if err != nil {
		return domain.Context{}, err
	}
	health, err := i.sources.Health.Health(ctx)
	if err != nil {
		return domain.Context{}, err
	}
	c := domain.Context{
		State:       activity.State,
		WorkoutType: activity.SelectedType,
		Steps:       health.Steps,
		HeartRate:   health.HeartRate,
		Calories:    health.Calories,
	}
	if i.sources.Weather != nil {
		weather, err := i.sources.Weather.Weather(ctx)
		if err != nil {
			log.WithError(err).Warn("coach: weather unavailable")
		} else {
			c.Weather = &weather
		}
	}
	return c, nil
}

func toOutput(r service.Result) coachdto.CoachOutput {
	return coachdto.CoachOutput{Kind: string(r.Kind), Text: r.Text, Source: string(r.Source)}
}
