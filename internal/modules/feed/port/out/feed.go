package out

import (
	"context"

	"watchtrainer/internal/modules/feed/domain"
)

type SnapshotStore interface {
	Save(ctx context.Context, snapshot domain.HealthSnapshot) error
	// Load returns apperrors.ErrNotFound when no snapshot has been stored.
	Load(ctx context.Context) (domain.HealthSnapshot, error)
	Path() string
}
