package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"watchtrainer/internal/modules/feed/domain"
	feedout "watchtrainer/internal/modules/feed/port/out"
	apperrors "watchtrainer/internal/platform/errors"
	"watchtrainer/internal/platform/fsutil"
)

type JSONSnapshotStore struct {
	path string
}

func NewJSONSnapshotStore(path string) feedout.SnapshotStore {
	return &JSONSnapshotStore{path: path}
}

func (s *JSONSnapshotStore) Path() string { return s.path }

func (s *JSONSnapshotStore) Save(_ context.Context, snapshot domain.HealthSnapshot) error {
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal health snapshot: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.path, payload); err != nil {
		return apperrors.Storage("write health snapshot", err)
	}
	return nil
}

func (s *JSONSnapshotStore) Load(_ context.Context) (domain.HealthSnapshot, error) {
	payload, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.HealthSnapshot{}, apperrors.ErrNotFound
		}
		return domain.HealthSnapshot{}, apperrors.Storage("read health snapshot", err)
	}
	var snapshot domain.HealthSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return domain.HealthSnapshot{}, apperrors.Storage("decode health snapshot", err)
	}
	return snapshot, nil
}
