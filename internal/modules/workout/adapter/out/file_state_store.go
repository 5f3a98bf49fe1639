package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	log "github.com/sirupsen/logrus"

	"watchtrainer/internal/modules/workout/domain"
	workoutout "watchtrainer/internal/modules/workout/port/out"
	apperrors "watchtrainer/internal/platform/errors"
	"watchtrainer/internal/platform/fsutil"
)

const lockRetry = 20 * time.Millisecond

// FileStateStore keeps the controller state in active-session.json so that
// separate CLI invocations share the current workout. Writers coordinate
// through an flock on a sibling .lock file, since saves replace the state
// file by rename.
type FileStateStore struct {
	path string
}

func NewFileStateStore(path string) workoutout.StateStore {
	return &FileStateStore{path: path}
}

func (s *FileStateStore) Lock(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, apperrors.Storage("create state dir", err)
	}
	fl := flock.New(s.path + ".lock")
	if _, err := fl.TryLockContext(ctx, lockRetry); err != nil {
		return nil, apperrors.Storage("lock active session", err)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			log.WithError(err).WithField("path", fl.Path()).Warn("unlock active session")
		}
	}, nil
}

func (s *FileStateStore) Load(_ context.Context) (domain.Tracker, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Tracker{SchemaVersion: domain.SchemaVersion}, nil
		}
		return domain.Tracker{}, apperrors.Storage("read active session", err)
	}
	var tracker domain.Tracker
	if err := json.Unmarshal(payload, &tracker); err != nil {
		return domain.Tracker{}, apperrors.Storage("decode active session", err)
	}
	if tracker.SchemaVersion > domain.SchemaVersion {
		return domain.Tracker{}, apperrors.InvalidState("active session schema %d is newer than supported %d", tracker.SchemaVersion, domain.SchemaVersion)
	}
	if tracker.Session != nil && tracker.Session.ID == "" {
		tracker.Session = nil
	}
	return tracker, nil
}

func (s *FileStateStore) Save(_ context.Context, tracker domain.Tracker) error {
	tracker.SchemaVersion = domain.SchemaVersion
	payload, err := json.MarshalIndent(tracker, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active session: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.path, payload); err != nil {
		return apperrors.Storage("write active session", err)
	}
	return nil
}
