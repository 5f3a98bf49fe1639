package service

import (
	"context"
	"time"

	"watchtrainer/internal/modules/history/domain"
	historyout "watchtrainer/internal/modules/history/port/out"
)

type HistoryService struct {
	store historyout.SessionStore
}

func NewHistoryService(store historyout.SessionStore) *HistoryService {
	return &HistoryService{store: store}
}

// Append persists a finalized session. Storage failures are returned as-is so
// the caller can keep the session and retry.
func (s *HistoryService) Append(ctx context.Context, session domain.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	return s.store.Append(ctx, session)
}

func (s *HistoryService) Get(ctx context.Context, id string) (domain.Session, error) {
	return s.store.Get(ctx, id)
}

func (s *HistoryService) QueryBetween(ctx context.Context, start, end time.Time) ([]domain.Session, error) {
	if end.Before(start) {
		return []domain.Session{}, nil
	}
	return s.store.QueryBetween(ctx, start, end)
}

func (s *HistoryService) SumStepsSince(ctx context.Context, since time.Time) (int64, error) {
	return s.store.SumStepsSince(ctx, since)
}

func (s *HistoryService) SumCaloriesSince(ctx context.Context, since time.Time) (float64, error) {
	return s.store.SumCaloriesSince(ctx, since)
}

func (s *HistoryService) SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error) {
	return s.store.SumDurationSince(ctx, since)
}

func (s *HistoryService) CountSince(ctx context.Context, since time.Time) (int, error) {
	return s.store.CountSince(ctx, since)
}
