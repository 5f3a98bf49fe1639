package in_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	weatherin "watchtrainer/internal/modules/weather/adapter/in"
	weatherdto "watchtrainer/internal/modules/weather/dto"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingWeather struct {
	fetches atomic.Int32
}

func (c *countingWeather) Current(context.Context) (weatherdto.WeatherOutput, error) {
	c.fetches.Add(1)
	return weatherdto.WeatherOutput{City: "Seoul"}, nil
}
func (c *countingWeather) Latest(context.Context) (weatherdto.WeatherOutput, error) {
	return weatherdto.WeatherOutput{}, nil
}
func (c *countingWeather) Subscribe() (<-chan weatherdto.WeatherOutput, func()) {
	return make(chan weatherdto.WeatherOutput), func() {}
}
func (c *countingWeather) Close() {}

func TestPollerFetchesUntilCancelled(t *testing.T) {
	t.Parallel()
	weather := &countingWeather{}
	poller := weatherin.NewPoller(weather, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	require.Eventually(t, func() bool { return weather.fetches.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}
