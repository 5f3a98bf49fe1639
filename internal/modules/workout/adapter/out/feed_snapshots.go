package out

import (
	"context"

	feedin "watchtrainer/internal/modules/feed/port/in"
	"watchtrainer/internal/modules/workout/domain"
	workoutout "watchtrainer/internal/modules/workout/port/out"
)

type FeedSnapshots struct {
	feed feedin.Usecase
}

func NewFeedSnapshots(feed feedin.Usecase) workoutout.SnapshotSource {
	return FeedSnapshots{feed: feed}
}

func (f FeedSnapshots) Latest(ctx context.Context) (domain.Snapshot, error) {
	latest, err := f.feed.Latest(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{
		Steps:     latest.Steps,
		HeartRate: latest.HeartRate,
		Calories:  latest.Calories,
		Distance:  latest.Distance,
	}, nil
}
