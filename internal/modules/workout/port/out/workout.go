package out

import (
	"context"

	historydomain "watchtrainer/internal/modules/history/domain"
	"watchtrainer/internal/modules/workout/domain"
)

type StateStore interface {
	// Lock blocks until the caller holds the state exclusively, also against
	// other processes, and returns the func that releases it.
	Lock(ctx context.Context) (func(), error)
	// Load returns an idle tracker when nothing has been saved.
	Load(ctx context.Context) (domain.Tracker, error)
	Save(ctx context.Context, tracker domain.Tracker) error
}

type SnapshotSource interface {
	Latest(ctx context.Context) (domain.Snapshot, error)
}

type Journal interface {
	Write(ctx context.Context, session historydomain.Session) (string, error)
}

type Observer interface {
	Transitioned(from, to domain.State, workoutType historydomain.WorkoutType)
	Completed(session historydomain.Session)
}
