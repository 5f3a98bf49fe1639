package pubsub_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"watchtrainer/internal/platform/pubsub"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubscribeReplaysLatestValue(t *testing.T) {
	t.Parallel()
	b := pubsub.NewBroker[int]()
	b.Publish(1)
	b.Publish(2)

	ch, cancel := b.Subscribe()
	defer cancel()

	assert.Equal(t, 2, <-ch)
	latest, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, 2, latest)
}

func TestSubscribeWithoutValueWaitsForPublish(t *testing.T) {
	t.Parallel()
	b := pubsub.NewBroker[string]()
	_, ok := b.Latest()
	assert.False(t, ok)

	ch, cancel := b.Subscribe()
	defer cancel()
	select {
	case v := <-ch:
		t.Fatalf("unexpected value before publish: %q", v)
	default:
	}

	b.Publish("steps")
	assert.Equal(t, "steps", <-ch)
}

func TestSlowSubscriberOnlySeesNewestValue(t *testing.T) {
	t.Parallel()
	b := pubsub.NewBroker[int]()
	ch, cancel := b.Subscribe()
	defer cancel()

	for i := 1; i <= 10; i++ {
		b.Publish(i)
	}
	assert.Equal(t, 10, <-ch)
}

func TestCancelAndCloseCloseChannels(t *testing.T) {
	t.Parallel()
	b := pubsub.NewBroker[int]()
	first, cancelFirst := b.Subscribe()
	second, cancelSecond := b.Subscribe()
	defer cancelSecond()
	require.Equal(t, 2, b.Subscribers())

	cancelFirst()
	cancelFirst()
	_, open := <-first
	assert.False(t, open)
	assert.Equal(t, 1, b.Subscribers())

	b.Close()
	_, open = <-second
	assert.False(t, open)
	assert.Equal(t, 0, b.Subscribers())

	b.Publish(5)
	late, cancelLate := b.Subscribe()
	defer cancelLate()
	_, open = <-late
	assert.False(t, open)
}

func TestConcurrentPublishersAndSubscribers(t *testing.T) {
	t.Parallel()
	b := pubsub.NewBroker[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			b.Publish(v)
		}(i)
		go func() {
			defer wg.Done()
			ch, cancel := b.Subscribe()
			defer cancel()
			select {
			case <-ch:
			default:
			}
		}()
	}
	wg.Wait()
	b.Close()
	assert.Equal(t, 0, b.Subscribers())
}
