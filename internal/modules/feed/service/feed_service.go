package service

import (
	"context"
	"errors"

	"watchtrainer/internal/modules/feed/domain"
	feedout "watchtrainer/internal/modules/feed/port/out"
	"watchtrainer/internal/platform/clock"
	apperrors "watchtrainer/internal/platform/errors"
)

type FeedService struct {
	clock clock.Clock
	store feedout.SnapshotStore
}

func NewFeedService(clk clock.Clock, store feedout.SnapshotStore) *FeedService {
	return &FeedService{clock: clk, store: store}
}

// Record validates and persists a reading, stamping it with the current time.
func (s *FeedService) Record(ctx context.Context, snapshot domain.HealthSnapshot) (domain.HealthSnapshot, error) {
	if err := snapshot.Validate(); err != nil {
		return domain.HealthSnapshot{}, err
	}
	snapshot.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, snapshot); err != nil {
		return domain.HealthSnapshot{}, err
	}
	return snapshot, nil
}

// Stored returns the persisted reading, or the zero snapshot when none exists.
func (s *FeedService) Stored(ctx context.Context) (domain.HealthSnapshot, error) {
	snapshot, err := s.store.Load(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.HealthSnapshot{}, nil
	}
	if err != nil {
		return domain.HealthSnapshot{}, err
	}
	if err := snapshot.Validate(); err != nil {
		return domain.HealthSnapshot{}, err
	}
	return snapshot, nil
}
