package out

import (
	"context"
	"time"

	"watchtrainer/internal/modules/history/domain"
)

// SessionStore is append-only: records are never updated or deleted here.
type SessionStore interface {
	Append(ctx context.Context, session domain.Session) error
	// Get fails with apperrors.ErrNotFound for an unknown id.
	Get(ctx context.Context, id string) (domain.Session, error)
	QueryBetween(ctx context.Context, start, end time.Time) ([]domain.Session, error)
	SumStepsSince(ctx context.Context, since time.Time) (int64, error)
	SumCaloriesSince(ctx context.Context, since time.Time) (float64, error)
	SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}
