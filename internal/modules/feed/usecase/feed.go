package usecase

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"watchtrainer/internal/modules/feed/domain"
	feeddto "watchtrainer/internal/modules/feed/dto"
	feedin "watchtrainer/internal/modules/feed/port/in"
	"watchtrainer/internal/modules/feed/service"
	"watchtrainer/internal/platform/pubsub"
)

type Interactor struct {
	svc    *service.FeedService
	broker *pubsub.Broker[feeddto.SnapshotOutput]
	prime  sync.Once
	// write keeps the persisted snapshot and the broadcast one in the same order.
	write sync.Mutex
}

func NewInteractor(svc *service.FeedService) feedin.Usecase {
	return &Interactor{svc: svc, broker: pubsub.NewBroker[feeddto.SnapshotOutput]()}
}

func (i *Interactor) Publish(ctx context.Context, input feeddto.SnapshotInput) (feeddto.SnapshotOutput, error) {
	i.write.Lock()
	defer i.write.Unlock()

	snapshot, err := i.svc.Record(ctx, domain.HealthSnapshot{
		Steps:         input.Steps,
		HeartRate:     input.HeartRate,
		Calories:      input.Calories,
		Distance:      input.Distance,
		ActiveMinutes: input.ActiveMinutes,
	})
	if err != nil {
		return feeddto.SnapshotOutput{}, err
	}
	out := toOutput(snapshot)
	i.broker.Publish(out)
	return out, nil
}

func (i *Interactor) Latest(ctx context.Context) (feeddto.SnapshotOutput, error) {
	if latest, ok := i.broker.Latest(); ok {
		return latest, nil
	}
	snapshot, err := i.svc.Stored(ctx)
	if err != nil {
		return feeddto.SnapshotOutput{}, err
	}
	return toOutput(snapshot), nil
}

func (i *Interactor) Subscribe() (<-chan feeddto.SnapshotOutput, func()) {
	i.prime.Do(func() {
		if _, ok := i.broker.Latest(); ok {
			return
		}
		snapshot, err := i.svc.Stored(context.Background())
		if err != nil {
			log.WithError(err).Warn("feed: stored snapshot unavailable")
			return
		}
		if !snapshot.IsZero() {
			i.broker.Publish(toOutput(snapshot))
		}
	})
	return i.broker.Subscribe()
}

// Reload re-reads the persisted snapshot after an external sync and
// broadcasts it.
func (i *Interactor) Reload(ctx context.Context) (feeddto.SnapshotOutput, error) {
	i.write.Lock()
	defer i.write.Unlock()

	snapshot, err := i.svc.Stored(ctx)
	if err != nil {
		return feeddto.SnapshotOutput{}, err
	}
	out := toOutput(snapshot)
	i.broker.Publish(out)
	return out, nil
}

func (i *Interactor) Close() {
	i.broker.Close()
}

func toOutput(s domain.HealthSnapshot) feeddto.SnapshotOutput {
	return feeddto.SnapshotOutput{
		Steps:         s.Steps,
		HeartRate:     s.HeartRate,
		Calories:      s.Calories,
		Distance:      s.Distance,
		ActiveMinutes: s.ActiveMinutes,
		UpdatedAt:     s.UpdatedAt,
	}
}
