package in

import (
	"context"

	"watchtrainer/internal/modules/feed/dto"
)

type Usecase interface {
	Publish(ctx context.Context, input dto.SnapshotInput) (dto.SnapshotOutput, error)
	// Latest returns the zero snapshot when nothing has been synced yet.
	Latest(ctx context.Context) (dto.SnapshotOutput, error)
	// Subscribe replays the latest snapshot, then streams updates until
	// cancel is called or the feed is closed.
	Subscribe() (updates <-chan dto.SnapshotOutput, cancel func())
	Reload(ctx context.Context) (dto.SnapshotOutput, error)
	Close()
}
