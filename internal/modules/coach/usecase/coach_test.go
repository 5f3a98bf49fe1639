package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchtrainer/internal/modules/coach/domain"
	coachout "watchtrainer/internal/modules/coach/port/out"
	"watchtrainer/internal/modules/coach/service"
	"watchtrainer/internal/modules/coach/usecase"
	apperrors "watchtrainer/internal/platform/errors"
)

type stubActivity struct {
	activity coachout.Activity
	err      error
}

func (s stubActivity) Activity(context.Context) (coachout.Activity, error) { return s.activity, s.err }

type stubHealth struct{ health coachout.Health }

func (s stubHealth) Health(context.Context) (coachout.Health, error) { return s.health, nil }

type stubWeather struct {
	weather domain.Weather
	err     error
}

func (s stubWeather) Weather(context.Context) (domain.Weather, error) { return s.weather, s.err }

type recordingGenerator struct{ last domain.Request }

func (g *recordingGenerator) Generate(_ context.Context, request domain.Request) (string, error) {
	g.last = request
	return "generated", nil
}

func TestMessageCombinesWorkoutFeedAndWeather(t *testing.T) {
	t.Parallel()
	gen := &recordingGenerator{}
	uc := usecase.NewInteractor(service.NewCoachService(service.Options{Generator: gen}), usecase.Sources{
		Activity: stubActivity{activity: coachout.Activity{State: "active", SelectedType: "running"}},
		Health:   stubHealth{health: coachout.Health{Steps: 5400, HeartRate: 132, Calories: 210}},
		Weather:  stubWeather{weather: domain.Weather{Temperature: 18, Description: "few clouds"}},
	})

	out, err := uc.Message(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "generated", out.Text)
	assert.Equal(t, "plugin", out.Source)
	assert.Equal(t, "message", out.Kind)

	got := gen.last.Context
	assert.Equal(t, "active", got.State)
	assert.Equal(t, "running", got.WorkoutType)
	assert.Equal(t, 5400, got.Steps)
	require.NotNil(t, got.Weather)
	assert.Equal(t, "few clouds", got.Weather.Description)
}

func TestMessageWithoutWeatherStillAnswers(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewCoachService(service.Options{}), usecase.Sources{
		Activity: stubActivity{activity: coachout.Activity{State: "idle", SelectedType: "walking"}},
		Health:   stubHealth{health: coachout.Health{Steps: 800}},
		Weather:  stubWeather{err: errors.New("offline")},
	})

	out, err := uc.Message(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback", out.Source)
	assert.Contains(t, out.Text, "800 steps")
}

func TestTipDefaultsToSelectedType(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewCoachService(service.Options{}), usecase.Sources{
		Activity: stubActivity{activity: coachout.Activity{State: "idle", SelectedType: "cycling"}},
		Health:   stubHealth{},
	})

	out, err := uc.Tip(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTip("cycling"), out.Text)

	out, err = uc.Tip(context.Background(), "Strength")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTip("strength"), out.Text)

	_, err = uc.Tip(context.Background(), "parkour")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMessagePropagatesWorkoutStatusFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("state unreadable")
	uc := usecase.NewInteractor(service.NewCoachService(service.Options{}), usecase.Sources{
		Activity: stubActivity{err: boom},
		Health:   stubHealth{},
	})
	_, err := uc.Message(context.Background())
	assert.ErrorIs(t, err, boom)
}
